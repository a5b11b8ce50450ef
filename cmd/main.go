// 指示: miu200521358
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/miu200521358/mu_humanoid/pkg/adapter/io_rig/rigyaml"
	"github.com/miu200521358/mu_humanoid/pkg/adapter/io_rig/vrm"
	"github.com/miu200521358/mu_humanoid/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_humanoid/pkg/domain/model"
	"github.com/miu200521358/mu_humanoid/pkg/infra/config"
	"github.com/miu200521358/mu_humanoid/pkg/infra/repository/sqlite"
	"github.com/miu200521358/mu_humanoid/pkg/infra/scene"
	"github.com/miu200521358/mu_humanoid/pkg/shared/logging"
	"github.com/miu200521358/mu_humanoid/pkg/usecase/minteractor"
)

// DEFAULT_SCENE_NAME は--scene未指定時のシーン名。
const DEFAULT_SCENE_NAME = "default"

// app はコマンド間で共有する状態を保持する。
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	verbose    bool
	configPath string
	sceneName  string

	cfg        *config.Config
	repository *sqlite.SceneRepository
	usecase    *minteractor.HumanoidUsecase
}

// main はCLIを実行する。
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run はCLI処理全体を実行する。
func run(ctx context.Context, args []string, in io.Reader, out io.Writer, errOut io.Writer) error {
	a := &app{in: in, out: out, errOut: errOut}
	defer a.close()

	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.ExecuteContext(ctx)
}

// newRootCommand はサブコマンドを含むルートコマンドを生成する。
func (a *app) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "mu_humanoid",
		Short:             messages.HelpRootShort,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.setup() },
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, messages.FlagVerbose)
	root.PersistentFlags().StringVar(&a.configPath, "config", "", messages.FlagConfig)
	root.PersistentFlags().StringVar(&a.sceneName, "scene", DEFAULT_SCENE_NAME, messages.FlagScene)

	root.AddCommand(
		a.newPasteCommand(),
		a.newCreateCommand(),
		a.newMeshCommand(),
		a.newVertexGroupCommand(),
		a.newFixRotationCommand(),
		a.newExportCommand(),
		a.newCopyCommand(),
		a.newListCommand(),
		a.newShowCommand(),
		a.newWatchCommand(),
	)
	return root
}

// setup は設定・ロガー・リポジトリ・ユースケースを準備する。
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := logging.LOG_LEVEL_WARN
	if a.verbose {
		level = logging.LOG_LEVEL_DEBUG
	}
	logging.SetDefaultLogger(logging.NewLogger(a.errOut, level))

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return err
	}
	repository, err := sqlite.Open(dbPath)
	if err != nil {
		return err
	}
	a.repository = repository

	a.usecase = minteractor.NewHumanoidUsecase(minteractor.HumanoidUsecaseDeps{
		HumanoidReader: vrm.NewHumanoidRepository(),
		RigWriter:      rigyaml.NewCodec(),
		ImportOptions:  cfg.ImportOptions(),
	})
	return nil
}

// close はリポジトリを閉じる。
func (a *app) close() {
	if a.repository == nil {
		return
	}
	if err := a.repository.Close(); err != nil {
		logging.DefaultLogger().Warn("リグライブラリを閉じられません: %v", err)
	}
	a.repository = nil
}

// withScene はシーンを読み込んで処理し、成功した場合だけ保存する。
func (a *app) withScene(ctx context.Context, fn func(s *scene.Scene) error) error {
	s, err := a.repository.LoadOrCreate(ctx, a.sceneName)
	if err != nil {
		return err
	}
	if err := fn(s); err != nil {
		return err
	}
	return a.repository.Save(ctx, s)
}

// printWarnings は警告を標準エラーへ出力する。
func (a *app) printWarnings(warnings []model.RigWarning) {
	for _, warning := range warnings {
		fmt.Fprintf(a.errOut, messages.MessageWarning, warning.ID, warning.Target)
	}
}

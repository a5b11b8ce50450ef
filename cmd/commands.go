// 指示: miu200521358
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/miu200521358/mu_humanoid/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_humanoid/pkg/domain/merrors"
	"github.com/miu200521358/mu_humanoid/pkg/domain/model"
	"github.com/miu200521358/mu_humanoid/pkg/domain/rig"
	"github.com/miu200521358/mu_humanoid/pkg/infra/scene"
	"github.com/miu200521358/mu_humanoid/pkg/infra/textsource"
	"github.com/miu200521358/mu_humanoid/pkg/infra/watcher"
	"github.com/miu200521358/mu_humanoid/pkg/usecase/minteractor"
)

// renameMode はフラグ値、未指定なら設定値の名前変換方式を返す。
func (a *app) renameMode(value string) (model.RenameMode, error) {
	if value == "" {
		return a.cfg.Import.Rename, nil
	}
	mode := model.RenameMode(value)
	if !mode.IsValid() {
		return "", merrors.NewConfigError("rename", nil, "名前変換方式が不正です: %s", value)
	}
	return mode, nil
}

// newPasteCommand はpasteコマンドを生成する。
func (a *app) newPasteCommand() *cobra.Command {
	var from, vrmPath, rename, name string
	var replace bool
	cmd := &cobra.Command{
		Use:   "paste",
		Short: messages.HelpPasteShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := a.renameMode(rename)
			if err != nil {
				return err
			}
			request := minteractor.PasteRequest{
				Source:     textsource.Resolve(from, a.in),
				ModelPath:  vrmPath,
				Rename:     mode,
				ObjectName: name,
				Replace:    replace,
			}
			return a.withScene(cmd.Context(), func(s *scene.Scene) error {
				result, err := a.usecase.PasteHumanoid(s, request)
				if err != nil {
					return err
				}
				a.printWarnings(result.Warnings)
				fmt.Fprintf(a.out, messages.MessageArmatureLinked, result.Object.Name(), result.Object.Skeleton.Len())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", textsource.CLIPBOARD_SOURCE, messages.FlagFrom)
	cmd.Flags().StringVar(&vrmPath, "vrm", "", messages.FlagVrm)
	cmd.Flags().StringVar(&rename, "rename", "", messages.FlagRename)
	cmd.Flags().StringVar(&name, "name", "", messages.FlagName)
	cmd.Flags().BoolVar(&replace, "replace", false, messages.FlagReplace)
	return cmd
}

// newCreateCommand はcreateコマンドを生成する。
func (a *app) newCreateCommand() *cobra.Command {
	var hipHeight, scale float64
	var symmetrize bool
	var name string
	cmd := &cobra.Command{
		Use:   "create",
		Short: messages.HelpCreateShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			request := minteractor.CreateRequest{
				HipHeight:  a.cfg.Template.HipHeight,
				Scale:      a.cfg.Template.Scale,
				Symmetrize: a.cfg.Template.Symmetrize,
				ObjectName: name,
			}
			if cmd.Flags().Changed("hip-height") {
				request.HipHeight = hipHeight
			}
			if cmd.Flags().Changed("scale") {
				request.Scale = scale
			}
			if cmd.Flags().Changed("symmetrize") {
				request.Symmetrize = symmetrize
			}
			return a.withScene(cmd.Context(), func(s *scene.Scene) error {
				result, err := a.usecase.CreateHumanoid(s, request)
				if err != nil {
					return err
				}
				a.printWarnings(result.Warnings)
				fmt.Fprintf(a.out, messages.MessageArmatureLinked, result.Object.Name(), result.Object.Skeleton.Len())
				return nil
			})
		},
	}
	cmd.Flags().Float64Var(&hipHeight, "hip-height", rig.DefaultHipHeight, messages.FlagHipHeight)
	cmd.Flags().Float64Var(&scale, "scale", 0.5, messages.FlagScale)
	cmd.Flags().BoolVar(&symmetrize, "symmetrize", true, messages.FlagSymmetrize)
	cmd.Flags().StringVar(&name, "name", "", messages.FlagName)
	return cmd
}

// newMeshCommand はmeshコマンドを生成する。
func (a *app) newMeshCommand() *cobra.Command {
	var armature, name string
	cmd := &cobra.Command{
		Use:   "mesh",
		Short: messages.HelpMeshShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withScene(cmd.Context(), func(s *scene.Scene) error {
				result, err := a.usecase.CreateProxyMesh(s, minteractor.ProxyMeshRequest{
					ArmatureName: armature,
					ObjectName:   name,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, messages.MessageMeshLinked, result.Mesh.Name(), result.Armature.Name())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&armature, "armature", "", messages.FlagArmature)
	cmd.Flags().StringVar(&name, "name", "", messages.FlagName)
	return cmd
}

// newVertexGroupCommand はvgroupsコマンドを生成する。
func (a *app) newVertexGroupCommand() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "vgroups",
		Short: messages.HelpVertexGroupShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withScene(cmd.Context(), func(s *scene.Scene) error {
				result, err := a.usecase.AddMirrorVertexGroups(s, minteractor.VertexGroupRequest{ObjectName: name})
				if err != nil {
					return err
				}
				a.printWarnings(result.Warnings)
				fmt.Fprintf(a.out, messages.MessageGroupsAdded, result.Mesh.Name(), len(result.Added))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", messages.FlagName)
	return cmd
}

// newFixRotationCommand はfix-rotationコマンドを生成する。
func (a *app) newFixRotationCommand() *cobra.Command {
	var name, source, target string
	cmd := &cobra.Command{
		Use:   "fix-rotation",
		Short: messages.HelpFixRotationShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, to, err := a.cfg.Conventions()
			if err != nil {
				return err
			}
			if source != "" {
				if from, err = rig.ParseConvention(source); err != nil {
					return err
				}
			}
			if target != "" {
				if to, err = rig.ParseConvention(target); err != nil {
					return err
				}
			}
			return a.withScene(cmd.Context(), func(s *scene.Scene) error {
				result, err := a.usecase.FixRotation(s, minteractor.FixRotationRequest{
					ObjectName: name,
					Source:     from,
					Target:     to,
				})
				if err != nil {
					return err
				}
				a.printWarnings(result.Warnings)
				fmt.Fprintf(a.out, messages.MessageRotationFixed, result.Objects[0].Name(), len(result.Objects))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", messages.FlagName)
	cmd.Flags().StringVar(&source, "source", "", messages.FlagSource)
	cmd.Flags().StringVar(&target, "target", "", messages.FlagTarget)
	return cmd
}

// newExportCommand はexportコマンドを生成する。
func (a *app) newExportCommand() *cobra.Command {
	var name, outPath, convention string
	cmd := &cobra.Command{
		Use:   "export",
		Short: messages.HelpExportShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, target, err := a.cfg.Conventions()
			if err != nil {
				return err
			}
			if convention != "" {
				if target, err = rig.ParseConvention(convention); err != nil {
					return err
				}
			}
			s, err := a.repository.LoadOrCreate(cmd.Context(), a.sceneName)
			if err != nil {
				return err
			}
			result, err := a.usecase.ExportRig(s, minteractor.ExportRequest{
				ObjectName: name,
				OutputPath: outPath,
				Convention: target,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, messages.MessageExported, result.OutputPath, result.BoneCount)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", messages.FlagName)
	cmd.Flags().StringVar(&outPath, "out", "", messages.FlagOut)
	cmd.Flags().StringVar(&convention, "convention", "", messages.FlagConvention)
	return cmd
}

// newCopyCommand はcopyコマンドを生成する。
func (a *app) newCopyCommand() *cobra.Command {
	var name, to string
	cmd := &cobra.Command{
		Use:   "copy",
		Short: messages.HelpCopyShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.repository.LoadOrCreate(cmd.Context(), a.sceneName)
			if err != nil {
				return err
			}
			sink := textsource.ResolveSink(to, a.out)
			result, err := a.usecase.CopyBoneTree(s, minteractor.CopyRequest{ObjectName: name, Sink: sink})
			if err != nil {
				return err
			}
			if to != textsource.STDIN_SOURCE {
				fmt.Fprintf(a.out, messages.MessageCopied, sink.Describe(), result.BoneCount)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", messages.FlagName)
	cmd.Flags().StringVar(&to, "to", textsource.CLIPBOARD_SOURCE, messages.FlagTo)
	return cmd
}

// newListCommand はlistコマンドを生成する。
func (a *app) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: messages.HelpListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summaries, err := a.repository.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				fmt.Fprint(a.out, messages.MessageNoScenes)
				return nil
			}
			for _, summary := range summaries {
				fmt.Fprintf(a.out, messages.MessageSceneRow,
					summary.Name, summary.ObjectCount, summary.UpdatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

// newShowCommand はshowコマンドを生成する。
func (a *app) newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: messages.HelpShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.repository.Load(cmd.Context(), a.sceneName)
			if err != nil {
				return err
			}
			active := s.Active()
			for _, object := range s.Objects() {
				marker := ""
				if object == active {
					marker = "*"
				}
				count := len(object.Vertices)
				if object.IsArmature() {
					count = object.Skeleton.Len()
				}
				fmt.Fprintf(a.out, messages.MessageObjectRow, marker, object.Name(), object.Type(), count)
			}
			return nil
		},
	}
}

// newWatchCommand はwatchコマンドを生成する。
func (a *app) newWatchCommand() *cobra.Command {
	var rename, name string
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: messages.HelpWatchShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := a.renameMode(rename)
			if err != nil {
				return err
			}
			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			w := watcher.New(path, func(changed string) error {
				return a.withScene(ctx, func(s *scene.Scene) error {
					result, err := a.usecase.PasteHumanoid(s, minteractor.PasteRequest{
						Source:     textsource.NewFileSource(changed),
						Rename:     mode,
						ObjectName: name,
						Replace:    true,
					})
					if err != nil {
						return err
					}
					a.printWarnings(result.Warnings)
					fmt.Fprintf(a.out, messages.MessageArmatureLinked, result.Object.Name(), result.Object.Skeleton.Len())
					return nil
				})
			})
			fmt.Fprintf(a.out, messages.MessageWatching, path)
			if err := w.Watch(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&rename, "rename", "", messages.FlagRename)
	cmd.Flags().StringVar(&name, "name", "", messages.FlagName)
	return cmd
}

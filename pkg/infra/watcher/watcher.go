// 指示: miu200521358
// Package watcher は取り込みファイルの変更監視を提供する。
package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/miu200521358/mu_humanoid/pkg/shared/logging"
)

// DefaultDebounce は連続した変更をまとめる既定の待ち時間。
const DefaultDebounce = 300 * time.Millisecond

// Watcher は1ファイルの変更を監視する。
type Watcher struct {
	path     string
	onChange func(path string) error
	debounce time.Duration
	ready    chan struct{}
}

// New はファイル監視を生成する。
func New(path string, onChange func(path string) error) *Watcher {
	return &Watcher{
		path:     path,
		onChange: onChange,
		debounce: DefaultDebounce,
		ready:    make(chan struct{}),
	}
}

// WithDebounce は待ち時間を設定する。
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Ready は監視開始後に閉じられるチャネルを返す。
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Watch はコンテキストが終了するまで監視し、変更のたびにonChangeを呼ぶ。
// onChangeは監視ゴルーチンから逐次呼ばれる。エラーは記録して監視を続ける。
func (w *Watcher) Watch(ctx context.Context) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsWatcher.Close()

	absPath, err := filepath.Abs(w.path)
	if err != nil {
		return err
	}
	// エディタの置き換え保存にも追従するためディレクトリを監視する
	if err := fsWatcher.Add(filepath.Dir(absPath)); err != nil {
		return err
	}
	logWatchInfo("監視開始: %s", absPath)
	close(w.ready)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			eventPath, err := filepath.Abs(event.Name)
			if err != nil || eventPath != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logWatchDebug("変更検知: %s %s", event.Op.String(), eventPath)
			timer.Reset(w.debounce)

		case <-timer.C:
			logWatchInfo("変更反映: %s", absPath)
			if err := w.onChange(absPath); err != nil {
				logWatchWarn("変更反映失敗: %s err=%s", absPath, err.Error())
			}

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			logWatchWarn("監視エラー: %s", err.Error())

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// logWatchInfo は監視ログを出力する。
func logWatchInfo(format string, params ...any) {
	logging.DefaultLogger().Info(format, params...)
}

// logWatchDebug は監視の詳細ログを出力する。
func logWatchDebug(format string, params ...any) {
	logging.DefaultLogger().Debug(format, params...)
}

// logWatchWarn は監視の警告ログを出力する。
func logWatchWarn(format string, params ...any) {
	logging.DefaultLogger().Warn(format, params...)
}

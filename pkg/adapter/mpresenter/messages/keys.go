// 指示: miu200521358
// Package messages はCLI表示に使うメッセージキーを提供する。
package messages

// メッセージキー一覧。
const (
	HelpRootShort        = "Humanoidアーマチュアの取り込み・生成・座標系変換"
	HelpPasteShort       = "ボーンツリーJSONまたはVRMからアーマチュアを生成する"
	HelpCreateShort      = "テンプレートからHumanoidアーマチュアを生成する"
	HelpMeshShort        = "アーマチュアに結びついた代理メッシュを生成する"
	HelpVertexGroupShort = "左右接尾辞付きボーン名の頂点グループを追加する"
	HelpFixRotationShort = "見た目を保ったまま形状データの座標系を変換する"
	HelpExportShort      = "アーマチュアをYAMLへ書き出す"
	HelpCopyShort        = "アーマチュアをボーンツリーJSONとして書き出す"
	HelpListShort        = "保存済みシーンの一覧を表示する"
	HelpShowShort        = "シーン内のオブジェクトを表示する"
	HelpWatchShort       = "ボーンツリーJSONの更新を監視して貼り付ける"

	FlagVerbose    = "詳細ログを出力する"
	FlagConfig     = "設定ファイルパス"
	FlagScene      = "操作するシーン名"
	FlagFrom       = "入力元(clipboard, - またはファイルパス)"
	FlagVrm        = "ボーンツリーを取り出すVRMファイル"
	FlagRename     = "名前変換方式(none, suffixed, unity)"
	FlagName       = "対象または生成するオブジェクト名"
	FlagReplace    = "同名のアーマチュアを置き換える"
	FlagArmature   = "対象アーマチュア名"
	FlagHipHeight  = "腰の高さ"
	FlagScale      = "拡縮率"
	FlagSymmetrize = "左側ボーンを右側へミラーする"
	FlagSource     = "変換元座標系(z-right, y-left など)"
	FlagTarget     = "変換先座標系"
	FlagOut        = "出力ファイルパス"
	FlagConvention = "書き出す座標系"
	FlagTo         = "出力先(clipboard, - またはファイルパス)"

	MessageArmatureLinked = "アーマチュアを配置しました: %s (%d ボーン)\n"
	MessageMeshLinked     = "代理メッシュを配置しました: %s -> %s\n"
	MessageGroupsAdded    = "頂点グループを追加しました: %s (%d 件)\n"
	MessageRotationFixed  = "座標系を変換しました: %s (%d オブジェクト)\n"
	MessageExported       = "書き出しました: %s (%d ボーン)\n"
	MessageCopied         = "ボーンツリーを書き出しました: %s (%d ボーン)\n"
	MessageWarning        = "警告: %s %s\n"
	MessageSceneRow       = "%s\t%d\t%s\n"
	MessageObjectRow      = "%s%s\t%s\t%d\n"
	MessageWatching       = "監視を開始しました: %s\n"
	MessageNoScenes       = "保存済みシーンはありません\n"
)

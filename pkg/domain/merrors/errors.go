// 指示: miu200521358
// Package merrors はリグ構築とホスト操作で発生するエラーを定義する。
package merrors

import (
	"errors"
	"fmt"
)

const (
	// InvalidTreeErrorID は入力ツリー不正のエラーID。
	InvalidTreeErrorID = "21101"
	// DegenerateVectorErrorID は長さゼロ方向ベクトルのエラーID。
	DegenerateVectorErrorID = "21102"
	// DecodeErrorID は取り込みテキスト解析失敗のエラーID。
	DecodeErrorID = "21201"
	// WriteFailedErrorID は出力先への書き込み失敗のエラーID。
	WriteFailedErrorID = "21202"
	// UnsupportedConventionErrorID は未対応座標系組み合わせのエラーID。
	UnsupportedConventionErrorID = "21301"
	// ObjectNotFoundErrorID はシーン内オブジェクト未検出のエラーID。
	ObjectNotFoundErrorID = "22101"
	// ObjectTypeMismatchErrorID はシーン内オブジェクト種別不一致のエラーID。
	ObjectTypeMismatchErrorID = "22102"
	// ConfigInvalidErrorID は設定値不正のエラーID。
	ConfigInvalidErrorID = "23101"
)

// IErrorID はエラーIDを持つエラーの契約を表す。
type IErrorID interface {
	error
	ErrorID() string
}

// ExtractErrorID はエラー連鎖から最初に見つかったエラーIDを返す。
func ExtractErrorID(err error) string {
	var idErr IErrorID
	if errors.As(err, &idErr) {
		return idErr.ErrorID()
	}
	return ""
}

// formatMessage は書式付きメッセージと原因エラーを連結する。
func formatMessage(message string, cause error) string {
	if cause == nil {
		return message
	}
	return fmt.Sprintf("%s: %v", message, cause)
}

// InvalidTreeError は入力ツリーが不正または不完全であることを表す。
type InvalidTreeError struct {
	BoneName string
	message  string
	cause    error
}

// NewInvalidTreeError はInvalidTreeErrorを生成する。
func NewInvalidTreeError(boneName string, cause error, format string, params ...any) *InvalidTreeError {
	return &InvalidTreeError{
		BoneName: boneName,
		message:  fmt.Sprintf(format, params...),
		cause:    cause,
	}
}

// Error はエラーメッセージを返す。
func (e *InvalidTreeError) Error() string {
	return formatMessage(e.message, e.cause)
}

// Unwrap は原因エラーを返す。
func (e *InvalidTreeError) Unwrap() error {
	return e.cause
}

// ErrorID はエラーIDを返す。
func (e *InvalidTreeError) ErrorID() string {
	return InvalidTreeErrorID
}

// DegenerateVectorError は方向を求められない長さゼロのベクトルを表す。
type DegenerateVectorError struct {
	Length float64
}

// NewDegenerateVectorError はDegenerateVectorErrorを生成する。
func NewDegenerateVectorError(length float64) *DegenerateVectorError {
	return &DegenerateVectorError{Length: length}
}

// Error はエラーメッセージを返す。
func (e *DegenerateVectorError) Error() string {
	return fmt.Sprintf("ベクトル長が小さすぎるため正規化できません: length=%g", e.Length)
}

// ErrorID はエラーIDを返す。
func (e *DegenerateVectorError) ErrorID() string {
	return DegenerateVectorErrorID
}

// DecodeError は取り込みテキストを解析できなかったことを表す。
type DecodeError struct {
	message string
	cause   error
}

// NewDecodeError はDecodeErrorを生成する。
func NewDecodeError(cause error, format string, params ...any) *DecodeError {
	return &DecodeError{
		message: fmt.Sprintf(format, params...),
		cause:   cause,
	}
}

// Error はエラーメッセージを返す。
func (e *DecodeError) Error() string {
	return formatMessage(e.message, e.cause)
}

// Unwrap は原因エラーを返す。
func (e *DecodeError) Unwrap() error {
	return e.cause
}

// ErrorID はエラーIDを返す。
func (e *DecodeError) ErrorID() string {
	return DecodeErrorID
}

// WriteError は出力先へ書き込めなかったことを表す。
type WriteError struct {
	message string
	cause   error
}

// NewWriteError はWriteErrorを生成する。
func NewWriteError(cause error, format string, params ...any) *WriteError {
	return &WriteError{
		message: fmt.Sprintf(format, params...),
		cause:   cause,
	}
}

// Error はエラーメッセージを返す。
func (e *WriteError) Error() string {
	return formatMessage(e.message, e.cause)
}

// Unwrap は原因エラーを返す。
func (e *WriteError) Unwrap() error {
	return e.cause
}

// ErrorID はエラーIDを返す。
func (e *WriteError) ErrorID() string {
	return WriteFailedErrorID
}

// UnsupportedConventionError は変換できない座標系の組み合わせを表す。
type UnsupportedConventionError struct {
	Source string
	Target string
}

// NewUnsupportedConventionError はUnsupportedConventionErrorを生成する。
func NewUnsupportedConventionError(source string, target string) *UnsupportedConventionError {
	return &UnsupportedConventionError{Source: source, Target: target}
}

// Error はエラーメッセージを返す。
func (e *UnsupportedConventionError) Error() string {
	return fmt.Sprintf("座標系の組み合わせが未対応です: %s -> %s", e.Source, e.Target)
}

// ErrorID はエラーIDを返す。
func (e *UnsupportedConventionError) ErrorID() string {
	return UnsupportedConventionErrorID
}

// HostError はホストシーン操作の失敗を表す。
type HostError struct {
	id      string
	message string
}

// NewObjectNotFoundError はシーン内オブジェクト未検出エラーを生成する。
func NewObjectNotFoundError(name string) *HostError {
	return &HostError{
		id:      ObjectNotFoundErrorID,
		message: fmt.Sprintf("オブジェクトが見つかりません: %s", name),
	}
}

// NewObjectTypeMismatchError はシーン内オブジェクト種別不一致エラーを生成する。
func NewObjectTypeMismatchError(name string, want string, got string) *HostError {
	return &HostError{
		id:      ObjectTypeMismatchErrorID,
		message: fmt.Sprintf("オブジェクト種別が不正です: name=%s want=%s got=%s", name, want, got),
	}
}

// Error はエラーメッセージを返す。
func (e *HostError) Error() string {
	return e.message
}

// ErrorID はエラーIDを返す。
func (e *HostError) ErrorID() string {
	return e.id
}

// ConfigError は設定値の不正を表す。
type ConfigError struct {
	Key     string
	message string
	cause   error
}

// NewConfigError はConfigErrorを生成する。
func NewConfigError(key string, cause error, format string, params ...any) *ConfigError {
	return &ConfigError{
		Key:     key,
		message: fmt.Sprintf(format, params...),
		cause:   cause,
	}
}

// Error はエラーメッセージを返す。
func (e *ConfigError) Error() string {
	return formatMessage(e.message, e.cause)
}

// Unwrap は原因エラーを返す。
func (e *ConfigError) Unwrap() error {
	return e.cause
}

// ErrorID はエラーIDを返す。
func (e *ConfigError) ErrorID() string {
	return ConfigInvalidErrorID
}

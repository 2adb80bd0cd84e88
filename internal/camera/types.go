package camera

import (
	"context"
	"errors"
	"image"
)

// Facing はカメラが向く物理的な方向を表す
type Facing string

const (
	FacingFront Facing = "front" // ユーザー側カメラ
	FacingBack  Facing = "back"  // 環境側カメラ
)

// ネイティブのfacingMode値
const (
	facingModeUser        = "user"
	facingModeEnvironment = "environment"
)

// NativeFacingMode はFacingをネイティブのfacingMode値に変換する
func NativeFacingMode(f Facing) (string, bool) {
	switch f {
	case FacingFront:
		return facingModeUser, true
	case FacingBack:
		return facingModeEnvironment, true
	default:
		return "", false
	}
}

// ImageType はキャプチャ画像のエンコード形式を表す
type ImageType string

const (
	ImageTypePNG ImageType = "png" // 可逆圧縮
	ImageTypeJPG ImageType = "jpg" // 非可逆圧縮（quality指定可能）
)

// PlatformFamily は実行環境のプラットフォーム系統を表す
// facingModeのexact/idealマッチングの分岐に使用する
type PlatformFamily string

const (
	// PlatformWebKit はユーザー側カメラにexactマッチを要求する系統
	PlatformWebKit PlatformFamily = "webkit"
	// PlatformGeneric はそれ以外の系統（常にidealマッチ）
	PlatformGeneric PlatformFamily = "generic"
)

// CapabilityName はデバイスの調整可能なパラメータ名を表す
type CapabilityName string

const (
	CapZoom                 CapabilityName = "zoom"
	CapExposureCompensation CapabilityName = "exposureCompensation"
	CapColorTemperature     CapabilityName = "colorTemperature"
	CapISO                  CapabilityName = "iso"
	CapBrightness           CapabilityName = "brightness"
	CapContrast             CapabilityName = "contrast"
	CapSaturation           CapabilityName = "saturation"
	CapSharpness            CapabilityName = "sharpness"
	CapFocusDistance        CapabilityName = "focusDistance"
	CapFocusMode            CapabilityName = "focusMode"
	CapTorch                CapabilityName = "torch"
	CapWhiteBalanceMode     CapabilityName = "whiteBalanceMode"
)

// CapabilityKind はCapabilityの種別を判別するタグ
type CapabilityKind int

const (
	// CapabilityRange は連続値の範囲 {Min, Max} を持つ
	CapabilityRange CapabilityKind = iota
	// CapabilityEnum は離散値の列挙 Values を持つ
	CapabilityEnum
)

// Capability はデバイスが報告する1パラメータ分の対応範囲を表す
// 読み取り専用で、このパッケージは内容を変更しない
type Capability struct {
	Kind   CapabilityKind
	Min    float64
	Max    float64
	Values []any // CapabilityEnumの場合のネイティブ値一覧（string/bool）
}

// RangeCapability は範囲型のCapabilityを作成する
func RangeCapability(min, max float64) Capability {
	return Capability{Kind: CapabilityRange, Min: min, Max: max}
}

// EnumCapability は列挙型のCapabilityを作成する
func EnumCapability(values ...any) Capability {
	return Capability{Kind: CapabilityEnum, Values: values}
}

// Capabilities はデバイスが報告するCapabilityの集合
// 報告されないパラメータはエントリ自体が存在しない
type Capabilities map[CapabilityName]Capability

// ConstraintSet は検証済みのネイティブ制約値の集合
// 交渉の結果サポートされないと判定された設定はエントリが省略される
type ConstraintSet map[CapabilityName]any

// NormalizedSettings はアプリケーション側の正規化された設定を表す
// 数値は[0,1]、モードは名前で指定する。nilのフィールドは「未指定」を意味し、
// 0やfalseなどの値とは区別される
type NormalizedSettings struct {
	Zoom                 *float64 // [0,1]
	ExposureCompensation *float64 // [0,1]
	ColorTemperature     *float64 // [0,1]
	ISO                  *float64 // [0,1]
	Brightness           *float64 // [0,1]
	Contrast             *float64 // [0,1]
	Saturation           *float64 // [0,1]
	Sharpness            *float64 // [0,1]
	FocusDepth           *float64 // [0,1]
	FlashMode            *string  // on / off / torch / auto
	AutoFocus            *string  // on / off
	WhiteBalance         *string  // auto / sunny / cloudy / shadow / incandescent / fluorescent
}

// TrackSettings はトラックが報告する現在のデバイス設定を表す
// キャプチャ結果のメタデータとして使用する
type TrackSettings struct {
	Width      int
	Height     int
	FacingMode string
	DeviceID   string
}

// TrackKind はトラックの種別を表す
type TrackKind string

const (
	TrackVideo TrackKind = "video"
	TrackAudio TrackKind = "audio"
)

// MediaTrack はキャプチャデバイスの1トラックを表す
// Capabilityの報告と非同期の制約適用を提供する
type MediaTrack interface {
	// Kind はトラック種別を返す
	Kind() TrackKind

	// DeviceID は物理デバイスの識別子を返す
	DeviceID() string

	// Capabilities はデバイスが報告する対応範囲を返す
	Capabilities() Capabilities

	// Settings は現在のデバイス設定を返す
	Settings() TrackSettings

	// ApplyConstraints は検証済み制約を1回のadvanced更新として適用する
	ApplyConstraints(ctx context.Context, advanced ConstraintSet) error

	// Stop はトラックを停止する。停止済みトラックへの呼び出しは無視される
	Stop()
}

// FrameSource は現在のライブフレームを取得できるトラックを表す
type FrameSource interface {
	// Frame は現在のフレームを返す
	Frame(ctx context.Context) (image.Image, error)
}

// MediaStream はライブキャプチャストリームを表す
type MediaStream interface {
	// ID はストリームの識別子を返す
	ID() string

	// VideoTracks は映像トラック一覧を返す
	VideoTracks() []MediaTrack

	// AudioTracks は音声トラック一覧を返す
	AudioTracks() []MediaTrack
}

// Stoppable はストリーム自体を直接停止できる実装を表す
// Teardownはこのインターフェースを実装するストリームに対してのみ
// ストリーム停止を呼び出す
type Stoppable interface {
	Stop()
}

// StreamAcquirer はストリーム取得サービスを表す外部コラボレーター
// 取得の失敗はそのまま呼び出し元に伝播し、このパッケージはリトライしない
type StreamAcquirer interface {
	Acquire(ctx context.Context, req DesiredStreamRequest) (MediaStream, error)
}

// ConstraintSupport は実行環境が報告可能な制約名の問い合わせを表す
// 報告できない環境ではnilまたは空のマップを返す
type ConstraintSupport interface {
	SupportedConstraints() map[string]bool
}

// CaptureCallback はキャプチャ完了時に同期的に呼び出されるコールバック
type CaptureCallback func(*CapturedPicture)

// CaptureOptions は1回のキャプチャ要求を表す
// 未指定のフィールドはデフォルト値（Scale:1, ImageType:png, Mirror:false）
// にフォールバックする
type CaptureOptions struct {
	Scale      *float64        // 出力幅の倍率（デフォルト1）
	ImageType  ImageType       // png / jpg（デフォルトpng）
	Quality    *float64        // [0,1]。jpgのみ有効（デフォルト0.92）
	Mirror     bool            // 水平反転
	OnCaptured CaptureCallback // キャプチャ完了時のコールバック
}

// CapturedPicture は1回のキャプチャ結果を表す
// 呼び出しごとに新規作成され、呼び出し元が所有する
type CapturedPicture struct {
	URI            string         // data URI形式のエンコード済み画像
	Base64         string         // エンコード済みペイロード（base64）
	Width          int            // 出力画像の幅
	Height         int            // 出力画像の高さ
	DeviceSettings *TrackSettings // キャプチャ時点のデバイス設定（取得可能な場合）
}

// プログラマーエラー（致命的・回復不能）を表すセンチネルエラー
// Capabilityのミスマッチ（回復可能）とは区別され、リトライも降格もされない
var (
	// ErrInvalidImageType は認識されない画像形式が指定された
	ErrInvalidImageType = errors.New("無効な画像形式")
	// ErrInvalidQuality は非可逆形式のqualityが[0,1]の範囲外
	ErrInvalidQuality = errors.New("qualityは0から1の範囲で指定する必要があります")
	// ErrNoSurface は描画サーフェスを取得できない
	ErrNoSurface = errors.New("描画サーフェスを取得できません")
	// ErrNoStream はアクティブなストリームが存在しない
	ErrNoStream = errors.New("アクティブなストリームがありません")
)

package camera

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"math"

	"github.com/disintegration/imaging"
)

// デフォルトのキャプチャ設定
const (
	defaultScale      = 1.0
	defaultJPGQuality = 0.92
)

// SurfaceProvider は指定サイズの2D描画サーフェスを提供する注入依存
// サーフェスを提供できない場合はエラーを返す
type SurfaceProvider func(width, height int) (draw.Image, error)

// DefaultSurfaceProvider はメモリ上のNRGBAサーフェスを提供する
func DefaultSurfaceProvider(width, height int) (draw.Image, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("無効なサーフェスサイズ: %dx%d", width, height)
	}
	return image.NewNRGBA(image.Rect(0, 0, width, height)), nil
}

// ImageSizeFor はライブフレームのサイズと倍率から出力サイズを計算する
// 幅は sourceWidth * scale、高さはアスペクト比を維持するよう導出する
func ImageSizeFor(sourceWidth, sourceHeight int, scale float64) (width, height int) {
	if sourceWidth <= 0 || sourceHeight <= 0 {
		return 0, 0
	}

	width = int(math.Round(float64(sourceWidth) * scale))
	height = int(math.Round(float64(width) * float64(sourceHeight) / float64(sourceWidth)))
	return width, height
}

// Pipeline はライブフレームから静止画を生成するキャプチャパイプライン
// 処理は同期的で、呼び出し中のキャンセルはない
type Pipeline struct {
	surfaces SurfaceProvider
}

// NewPipeline は新しいPipelineを作成する
// providerがnilの場合はDefaultSurfaceProviderを使用する
func NewPipeline(provider SurfaceProvider) *Pipeline {
	if provider == nil {
		provider = DefaultSurfaceProvider
	}
	return &Pipeline{surfaces: provider}
}

// Capture はライブフレームから静止画を1枚生成する
//
// 画像形式とqualityの検証は描画より先に行い、違反は即座に失敗として
// 返す。Mirror指定時は描画前に
// 水平反転を適用する。deviceSettingsが利用可能な場合はキャプチャ時点の
// メタデータとして結果へコピーされ、OnCapturedは結果を返す前に同期的に
// 呼び出される
func (p *Pipeline) Capture(frame image.Image, deviceSettings *TrackSettings, opts CaptureOptions) (*CapturedPicture, error) {
	if frame == nil {
		return nil, fmt.Errorf("キャプチャ対象のフレームがありません")
	}

	// デフォルト値のマージ
	scale := defaultScale
	if opts.Scale != nil {
		scale = *opts.Scale
	}
	imageType := opts.ImageType
	if imageType == "" {
		imageType = ImageTypePNG
	}

	// 描画前の検証。qualityは非可逆形式のみ意味を持つ
	if imageType != ImageTypePNG && imageType != ImageTypeJPG {
		return nil, fmt.Errorf("%w: %s", ErrInvalidImageType, imageType)
	}
	quality := defaultJPGQuality
	if imageType == ImageTypeJPG && opts.Quality != nil {
		quality = *opts.Quality
		if quality < 0 || quality > 1 {
			return nil, fmt.Errorf("%w: %g", ErrInvalidQuality, quality)
		}
	}

	bounds := frame.Bounds()
	width, height := ImageSizeFor(bounds.Dx(), bounds.Dy(), scale)

	surface, err := p.surfaces(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSurface, err)
	}
	if surface == nil {
		return nil, ErrNoSurface
	}

	rendered := imaging.Resize(frame, width, height, imaging.Lanczos)
	if opts.Mirror {
		rendered = imaging.FlipH(rendered)
	}
	draw.Draw(surface, surface.Bounds(), rendered, rendered.Bounds().Min, draw.Src)

	payload, mimeType, err := encodeSurface(surface, imageType, quality)
	if err != nil {
		return nil, err
	}

	encoded := base64.StdEncoding.EncodeToString(payload)
	picture := &CapturedPicture{
		URI:    fmt.Sprintf("data:%s;base64,%s", mimeType, encoded),
		Base64: encoded,
		Width:  width,
		Height: height,
	}

	if deviceSettings != nil {
		settings := *deviceSettings
		picture.DeviceSettings = &settings
	}

	if opts.OnCaptured != nil {
		opts.OnCaptured(picture)
	}

	return picture, nil
}

// encodeSurface はサーフェス内容を指定形式にエンコードする
// 可逆形式ではqualityは無視される
func encodeSurface(surface image.Image, imageType ImageType, quality float64) ([]byte, string, error) {
	var buf bytes.Buffer

	switch imageType {
	case ImageTypePNG:
		if err := png.Encode(&buf, surface); err != nil {
			return nil, "", fmt.Errorf("PNGエンコードに失敗: %w", err)
		}
		return buf.Bytes(), "image/png", nil

	case ImageTypeJPG:
		options := &jpeg.Options{Quality: int(math.Round(quality * 100))}
		if err := jpeg.Encode(&buf, surface, options); err != nil {
			return nil, "", fmt.Errorf("JPEGエンコードに失敗: %w", err)
		}
		return buf.Bytes(), "image/jpeg", nil

	default:
		return nil, "", fmt.Errorf("%w: %s", ErrInvalidImageType, imageType)
	}
}

package camera

import (
	"context"
	"image"
	"image/color"
)

// SyntheticAcquirer は実デバイスなしで動作確認するためのStreamAcquirer実装
//
// 取得要求のfacingMode制約に応じたデバイス識別子を持つストリームを
// 生成し、テストパターンのフレームを供給する。開発環境での
// エンドツーエンド確認に使用する
type SyntheticAcquirer struct {
	Width  int
	Height int
}

// NewSyntheticAcquirer は新しいSyntheticAcquirerを作成する
func NewSyntheticAcquirer(width, height int) *SyntheticAcquirer {
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 720
	}
	return &SyntheticAcquirer{Width: width, Height: height}
}

// Acquire は要求に応じた合成ストリームを生成する
func (a *SyntheticAcquirer) Acquire(_ context.Context, req DesiredStreamRequest) (MediaStream, error) {
	mode := facingModeEnvironment
	if req.Video.Kind == VideoConstraintStructured && req.Video.FacingMode != nil {
		if req.Video.FacingMode.Exact != "" {
			mode = req.Video.FacingMode.Exact
		} else if req.Video.FacingMode.Ideal != "" {
			mode = req.Video.FacingMode.Ideal
		}
	}

	width, height := a.Width, a.Height
	if req.Video.Kind == VideoConstraintStructured {
		if req.Video.Width != nil {
			width = *req.Video.Width
		}
		if req.Video.Height != nil {
			height = *req.Video.Height
		}
	}

	track := NewMockMediaTrack(TrackVideo, "synthetic-"+mode)
	track.SetCapabilities(Capabilities{
		CapZoom:             RangeCapability(1, 8),
		CapBrightness:       RangeCapability(-64, 64),
		CapContrast:         RangeCapability(0, 95),
		CapSaturation:       RangeCapability(0, 100),
		CapSharpness:        RangeCapability(1, 7),
		CapTorch:            EnumCapability(true, false),
		CapFocusMode:        EnumCapability("continuous", "manual"),
		CapWhiteBalanceMode: EnumCapability("continuous", "manual"),
	})
	track.SetSettings(TrackSettings{
		Width:      width,
		Height:     height,
		FacingMode: mode,
		DeviceID:   "synthetic-" + mode,
	})
	track.SetFrame(testPattern(width, height))

	return NewMockMediaStream(track), nil
}

// testPattern はグラデーションのテストパターンを生成する
func testPattern(width, height int) image.Image {
	frame := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			frame.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / width),
				G: uint8(y * 255 / height),
				B: 128,
				A: 255,
			})
		}
	}
	return frame
}

package camera

import (
	"context"
	"fmt"
	"sync"
)

// Negotiator はデバイスのCapabilityとアプリケーションの正規化設定から
// 検証済みのネイティブ制約を構築し、トラックへ適用する
type Negotiator struct {
	translator  ModeTranslator
	diagnostics DiagnosticSink
}

// NewNegotiator は新しいNegotiatorを作成する
// translatorがnilの場合はDefaultModeTranslator、sinkがnilの場合はNopSinkを使用する
func NewNegotiator(translator ModeTranslator, sink DiagnosticSink) *Negotiator {
	if translator == nil {
		translator = NewDefaultModeTranslator()
	}
	if sink == nil {
		sink = NopSink{}
	}
	return &Negotiator{
		translator:  translator,
		diagnostics: sink,
	}
}

// rangedSetting は範囲型Capabilityへの正規化設定の対応付け
type rangedSetting struct {
	name  CapabilityName
	value *float64
}

// modeSetting はモード型Capabilityへの正規化設定の対応付け
type modeSetting struct {
	name CapabilityName
	mode *string
}

// BuildConstraints はCapabilityと正規化設定から検証済み制約を構築する
//
// デバイスが報告しないCapability、およびアプリケーションが指定しなかった
// 設定はエントリ自体を省略する。範囲型は[0,1]からデバイス範囲へ変換後に
// クランプし、モード型は変換結果がデバイスの列挙値に含まれない場合に
// 破棄して診断を通知する
func (n *Negotiator) BuildConstraints(caps Capabilities, settings NormalizedSettings, facing Facing) ConstraintSet {
	set := make(ConstraintSet)

	ranged := []rangedSetting{
		{CapZoom, settings.Zoom},
		{CapExposureCompensation, settings.ExposureCompensation},
		{CapColorTemperature, settings.ColorTemperature},
		{CapISO, settings.ISO},
		{CapBrightness, settings.Brightness},
		{CapContrast, settings.Contrast},
		{CapSaturation, settings.Saturation},
		{CapSharpness, settings.Sharpness},
		{CapFocusDistance, settings.FocusDepth},
	}

	for _, r := range ranged {
		capability, reported := caps[r.name]
		if !reported || capability.Kind != CapabilityRange {
			continue
		}
		// 未指定（nil）は省略する。0は有効な指定値として扱う
		if r.value == nil {
			continue
		}

		native := ConvertNormalized(r.value, capability.Min, capability.Max)
		// 丸め誤差対策として変換後にもう一度クランプする
		set[r.name] = ClampToRange(*native, capability.Min, capability.Max)
	}

	modes := []modeSetting{
		{CapFocusMode, settings.AutoFocus},
		{CapTorch, settings.FlashMode},
		{CapWhiteBalanceMode, settings.WhiteBalance},
	}

	for _, m := range modes {
		capability, reported := caps[m.name]
		if !reported {
			continue
		}
		if m.mode == nil {
			continue
		}

		native, ok := n.translator.ToNative(m.name, *m.mode, facing)
		if !ok {
			n.diagnostics.UnsupportedSetting(m.name, *m.mode, nil, facing)
			continue
		}

		// 列挙型のCapabilityは変換結果がメンバーであることを検証する
		if capability.Kind == CapabilityEnum && !containsValue(capability.Values, native) {
			n.diagnostics.UnsupportedSetting(m.name, *m.mode, native, facing)
			continue
		}

		set[m.name] = native
	}

	return set
}

// containsValue はvaluesにvが含まれるかを返す
// falseや0も有効な値として比較する
func containsValue(values []any, v any) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// Negotiate はストリームの全映像トラックへ制約を構築・適用する
//
// トラックごとの適用は並行して実行され、全トラックの適用が完了するまで
// ブロックする。いずれかのトラックの適用が失敗した場合は全体が失敗として
// 返るが、適用済みの他トラックの制約はロールバックされない
func (n *Negotiator) Negotiate(ctx context.Context, facing Facing, stream MediaStream, settings NormalizedSettings) error {
	if stream == nil {
		return ErrNoStream
	}

	tracks := stream.VideoTracks()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		applyErrs []error
	)

	for _, track := range tracks {
		set := n.BuildConstraints(track.Capabilities(), settings, facing)

		wg.Add(1)
		go func(track MediaTrack, set ConstraintSet) {
			defer wg.Done()

			if err := track.ApplyConstraints(ctx, set); err != nil {
				mu.Lock()
				applyErrs = append(applyErrs, fmt.Errorf("トラック %s への制約適用に失敗: %w", track.DeviceID(), err))
				mu.Unlock()
			}
		}(track, set)
	}

	wg.Wait()

	if len(applyErrs) > 0 {
		if len(applyErrs) == 1 {
			return applyErrs[0]
		}
		return fmt.Errorf("一部のトラックへの制約適用に失敗: %v", applyErrs)
	}

	return nil
}

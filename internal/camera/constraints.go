package camera

// VideoConstraintKind はビデオ制約表現の種別を判別するタグ
// 形状からの推測ではなく明示的に判別する
type VideoConstraintKind int

const (
	// VideoConstraintBool は有効/無効のみを表すブール形式
	VideoConstraintBool VideoConstraintKind = iota
	// VideoConstraintStructured はfacingModeや解像度を含む構造化形式
	VideoConstraintStructured
)

// FacingModeConstraint はfacingModeの制約を表す
// ExactとIdealはどちらか一方のみが設定される
type FacingModeConstraint struct {
	Exact string // 厳密一致を要求する値
	Ideal string // 優先するが必須ではない値
}

// VideoConstraint はストリーム要求のビデオ制約を表すタグ付きユニオン
type VideoConstraint struct {
	Kind       VideoConstraintKind
	Enabled    bool                  // VideoConstraintBoolの場合
	FacingMode *FacingModeConstraint // VideoConstraintStructuredの場合
	Width      *int
	Height     *int
}

// DesiredStreamRequest はストリーム取得要求を表す
// 取得試行ごとに構築され、構築後は変更されない
type DesiredStreamRequest struct {
	Video VideoConstraint
	Audio bool
}

// baselineRequest はビデオ有効・音声無効の最小限の要求
func baselineRequest() DesiredStreamRequest {
	return DesiredStreamRequest{
		Video: VideoConstraint{Kind: VideoConstraintBool, Enabled: true},
		Audio: false,
	}
}

// ConstraintBuilder は希望する向きとフレームサイズから
// DesiredStreamRequestを構築する
// Capability情報が取得できない場合は最小限の要求へ退行し、失敗しない
type ConstraintBuilder struct {
	platform PlatformFamily
	support  ConstraintSupport
}

// NewConstraintBuilder は新しいConstraintBuilderを作成する
// supportがnilの場合、実行環境は制約名を報告できないものとして扱う
func NewConstraintBuilder(platform PlatformFamily, support ConstraintSupport) *ConstraintBuilder {
	return &ConstraintBuilder{
		platform: platform,
		support:  support,
	}
}

// Build はストリーム取得要求を構築する
//
// 向き・幅・高さが全て明示されている場合、呼び出し元が取得後の交渉に
// 全責任を持つものとして最小限の要求をそのまま返す。実行環境が
// facingMode/width/heightの制約名を報告できない場合も最小限の要求へ
// 退行する
func (b *ConstraintBuilder) Build(preferred *Facing, width, height *int) DesiredStreamRequest {
	// 完全指定の要求は呼び出し元の責任とし、そのまま最小限の要求を返す
	if preferred != nil && width != nil && height != nil {
		return baselineRequest()
	}

	supported := b.supportedConstraints()
	if supported == nil {
		return baselineRequest()
	}
	if !supported["facingMode"] || !supported["width"] || !supported["height"] {
		return baselineRequest()
	}

	req := DesiredStreamRequest{
		Video: VideoConstraint{Kind: VideoConstraintStructured},
		Audio: false,
	}

	if preferred != nil {
		if mode, ok := NativeFacingMode(*preferred); ok {
			req.Video.FacingMode = b.facingConstraint(mode)
		}
	}

	// 解像度は構造化形式のビデオ制約にのみ設定できる
	if req.Video.Kind == VideoConstraintStructured {
		if width != nil {
			w := *width
			req.Video.Width = &w
		}
		if height != nil {
			h := *height
			req.Video.Height = &h
		}
	}

	return req
}

// facingConstraint はプラットフォーム系統に応じたfacingMode制約を返す
// WebKit系はユーザー側カメラにexactマッチを要求する。それ以外は常にideal
func (b *ConstraintBuilder) facingConstraint(mode string) *FacingModeConstraint {
	switch b.platform {
	case PlatformWebKit:
		if mode == facingModeUser {
			return &FacingModeConstraint{Exact: mode}
		}
		return &FacingModeConstraint{Ideal: mode}
	default:
		return &FacingModeConstraint{Ideal: mode}
	}
}

// supportedConstraints は実行環境が報告する制約名を返す
// 報告できない場合はnilを返す
func (b *ConstraintBuilder) supportedConstraints() map[string]bool {
	if b.support == nil {
		return nil
	}
	supported := b.support.SupportedConstraints()
	if len(supported) == 0 {
		return nil
	}
	return supported
}

// StaticConstraintSupport は固定の制約名集合を報告するConstraintSupport実装
type StaticConstraintSupport map[string]bool

// SupportedConstraints は固定の制約名集合を返す
func (s StaticConstraintSupport) SupportedConstraints() map[string]bool {
	return s
}

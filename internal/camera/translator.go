package camera

// ModeTranslator はアプリケーションレベルのモード名をデバイスの
// ネイティブなモード語彙へ変換する外部サービスを表す
// プラットフォームごとに差し替え可能な注入依存として扱う
type ModeTranslator interface {
	// ToNative はモード名をネイティブ値へ変換する
	// 変換できない場合は ok=false を返す
	ToNative(cap CapabilityName, mode string, facing Facing) (native any, ok bool)
}

// DefaultModeTranslator はWeb系プラットフォーム向けの標準変換テーブル
type DefaultModeTranslator struct{}

// NewDefaultModeTranslator は新しいDefaultModeTranslatorを作成する
func NewDefaultModeTranslator() ModeTranslator {
	return &DefaultModeTranslator{}
}

// torchはbool値、focusMode/whiteBalanceModeは文字列のネイティブ語彙を持つ
var (
	torchModes = map[string]bool{
		"on":    true,
		"torch": true,
		"off":   false,
		"auto":  false,
	}

	focusModes = map[string]string{
		"on":   "continuous",
		"off":  "manual",
		"auto": "single-shot",
	}

	whiteBalanceModes = map[string]string{
		"auto":         "continuous",
		"sunny":        "daylight",
		"cloudy":       "cloudy-daylight",
		"shadow":       "shade",
		"incandescent": "incandescent",
		"fluorescent":  "fluorescent",
	}
)

// ToNative はモード名を標準テーブルで変換する
func (t *DefaultModeTranslator) ToNative(cap CapabilityName, mode string, _ Facing) (any, bool) {
	switch cap {
	case CapTorch:
		v, ok := torchModes[mode]
		return v, ok
	case CapFocusMode:
		v, ok := focusModes[mode]
		return v, ok
	case CapWhiteBalanceMode:
		v, ok := whiteBalanceModes[mode]
		return v, ok
	default:
		return nil, false
	}
}

// MockModeTranslator はテスト用のモックModeTranslator実装
type MockModeTranslator struct {
	// Results は (capability, mode) の組に対する変換結果
	Results map[CapabilityName]map[string]any
}

// NewMockModeTranslator は新しいMockModeTranslatorを作成する
func NewMockModeTranslator() *MockModeTranslator {
	return &MockModeTranslator{
		Results: make(map[CapabilityName]map[string]any),
	}
}

// Set はテスト用に変換結果を登録する
func (m *MockModeTranslator) Set(cap CapabilityName, mode string, native any) {
	if m.Results[cap] == nil {
		m.Results[cap] = make(map[string]any)
	}
	m.Results[cap][mode] = native
}

// ToNative は登録済みの変換結果を返す
func (m *MockModeTranslator) ToNative(cap CapabilityName, mode string, _ Facing) (any, bool) {
	modes, ok := m.Results[cap]
	if !ok {
		return nil, false
	}
	v, ok := modes[mode]
	return v, ok
}

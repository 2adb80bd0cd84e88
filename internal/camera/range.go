package camera

// ConvertNormalized は[0,1]の正規化値をネイティブ範囲[min,max]へ線形変換する
// valueがnilの場合はnilを返し、「未指定」と「最小値の指定」を区別する
// 範囲外の入力は拒否せずクランプする。副作用はなく、失敗しない
func ConvertNormalized(value *float64, min, max float64) *float64 {
	if value == nil {
		return nil
	}

	native := *value*(max-min) + min
	native = ClampToRange(native, min, max)
	return &native
}

// ClampToRange はvalueを[min,max]の範囲に収める
func ClampToRange(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

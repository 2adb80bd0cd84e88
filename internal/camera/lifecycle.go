package camera

// SameDevice は2つのストリームが同一の物理デバイスを指すかを判定する
//
// どちらかが存在しない場合はfalseを返す。それ以外は各ストリームの
// 先頭トラックのデバイス識別子を比較し、一致すれば同一デバイスとみなす。
// 向きの切り替えが同じデバイスに解決された場合の再取得・再描画の
// 回避に使用する
func SameDevice(a, b MediaStream) bool {
	if a == nil || b == nil {
		return false
	}

	trackA := firstTrack(a)
	trackB := firstTrack(b)
	if trackA == nil || trackB == nil {
		return false
	}

	return trackA.DeviceID() == trackB.DeviceID()
}

// firstTrack はストリームの先頭トラックを返す。トラックがなければnil
func firstTrack(s MediaStream) MediaTrack {
	if video := s.VideoTracks(); len(video) > 0 {
		return video[0]
	}
	if audio := s.AudioTracks(); len(audio) > 0 {
		return audio[0]
	}
	return nil
}

// Teardown はストリームの全トラックを停止する
//
// 音声トラック、映像トラックの順で停止し、ストリーム自体が直接停止
// 可能な実装（Stoppable）であれば最後にストリームを停止する。
// ストリームが存在しない場合は何もせず、停止済みトラックの再停止は
// 影響がないため冪等である
func Teardown(stream MediaStream) {
	if stream == nil {
		return
	}

	for _, track := range stream.AudioTracks() {
		track.Stop()
	}
	for _, track := range stream.VideoTracks() {
		track.Stop()
	}

	if stoppable, ok := stream.(Stoppable); ok {
		stoppable.Stop()
	}
}

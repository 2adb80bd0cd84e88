package camera

import "testing"

func TestSameDevice_NilStreams(t *testing.T) {
	stream := NewMockMediaStream(NewMockMediaTrack(TrackVideo, "device-1"))

	if SameDevice(nil, stream) {
		t.Error("SameDevice(nil, s) should be false")
	}
	if SameDevice(stream, nil) {
		t.Error("SameDevice(s, nil) should be false")
	}
	if SameDevice(nil, nil) {
		t.Error("SameDevice(nil, nil) should be false")
	}
}

func TestSameDevice_SameStream(t *testing.T) {
	stream := NewMockMediaStream(NewMockMediaTrack(TrackVideo, "device-1"))

	if !SameDevice(stream, stream) {
		t.Error("SameDevice(s, s) should be true for stream with a track")
	}
}

func TestSameDevice_EmptyStream(t *testing.T) {
	empty := NewMockMediaStream()

	if SameDevice(empty, empty) {
		t.Error("トラックのないストリームは同一デバイスと判定できない")
	}
}

func TestSameDevice_Comparison(t *testing.T) {
	a := NewMockMediaStream(NewMockMediaTrack(TrackVideo, "device-1"))
	b := NewMockMediaStream(NewMockMediaTrack(TrackVideo, "device-1"))
	c := NewMockMediaStream(NewMockMediaTrack(TrackVideo, "device-2"))

	if !SameDevice(a, b) {
		t.Error("同じデバイスIDのストリームが同一と判定されません")
	}
	if SameDevice(a, c) {
		t.Error("異なるデバイスIDのストリームが同一と判定されています")
	}
}

func TestTeardown_StopsAllTracks(t *testing.T) {
	video := NewMockMediaTrack(TrackVideo, "device-1")
	audio := NewMockMediaTrack(TrackAudio, "device-1")
	stream := NewMockMediaStream(video, audio)

	Teardown(stream)

	if video.StopCount != 1 {
		t.Errorf("Expected video track stopped once, got %d", video.StopCount)
	}
	if audio.StopCount != 1 {
		t.Errorf("Expected audio track stopped once, got %d", audio.StopCount)
	}
	// Stoppableなストリームはストリーム自体も停止される
	if stream.StopCount() != 1 {
		t.Errorf("Expected stream stopped once, got %d", stream.StopCount())
	}
}

func TestTeardown_Idempotent(t *testing.T) {
	video := NewMockMediaTrack(TrackVideo, "device-1")
	stream := NewMockMediaStream(video)

	// 2回呼んでも障害は発生しない
	Teardown(stream)
	Teardown(stream)

	if video.StopCount != 2 {
		t.Errorf("Expected 2 stop calls, got %d", video.StopCount)
	}
}

func TestTeardown_NilStream(t *testing.T) {
	// ストリームが存在しない場合は何もしない
	Teardown(nil)
}

package camera

import (
	"context"
	"fmt"
	"image"
	"sync"

	"github.com/google/uuid"
)

// MockMediaTrack はテスト用のモックMediaTrack実装
type MockMediaTrack struct {
	mu           sync.Mutex
	kind         TrackKind
	deviceID     string
	capabilities Capabilities
	settings     TrackSettings
	frame        image.Image

	// テスト制御用
	ApplyErr  error
	Applied   []ConstraintSet
	StopCount int
}

// NewMockMediaTrack は新しいMockMediaTrackを作成する
func NewMockMediaTrack(kind TrackKind, deviceID string) *MockMediaTrack {
	return &MockMediaTrack{
		kind:         kind,
		deviceID:     deviceID,
		capabilities: make(Capabilities),
		settings:     TrackSettings{DeviceID: deviceID},
	}
}

// Kind はトラック種別を返す
func (m *MockMediaTrack) Kind() TrackKind {
	return m.kind
}

// DeviceID はデバイス識別子を返す
func (m *MockMediaTrack) DeviceID() string {
	return m.deviceID
}

// Capabilities は設定されたCapabilityを返す
func (m *MockMediaTrack) Capabilities() Capabilities {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.capabilities
}

// SetCapabilities はテスト用にCapabilityを設定する
func (m *MockMediaTrack) SetCapabilities(caps Capabilities) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.capabilities = caps
}

// Settings は現在のデバイス設定を返す
func (m *MockMediaTrack) Settings() TrackSettings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings
}

// SetSettings はテスト用にデバイス設定を設定する
func (m *MockMediaTrack) SetSettings(settings TrackSettings) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = settings
}

// ApplyConstraints は適用された制約を記録する
func (m *MockMediaTrack) ApplyConstraints(_ context.Context, advanced ConstraintSet) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ApplyErr != nil {
		return m.ApplyErr
	}

	m.Applied = append(m.Applied, advanced)
	return nil
}

// LastApplied は最後に適用された制約を返す。未適用の場合はnil
func (m *MockMediaTrack) LastApplied() ConstraintSet {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Applied) == 0 {
		return nil
	}
	return m.Applied[len(m.Applied)-1]
}

// Frame は設定されたフレームを返す
func (m *MockMediaTrack) Frame(_ context.Context) (image.Image, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.frame == nil {
		return nil, fmt.Errorf("フレームが設定されていません")
	}
	return m.frame, nil
}

// SetFrame はテスト用にライブフレームを設定する
func (m *MockMediaTrack) SetFrame(frame image.Image) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frame = frame
}

// Stop はトラックを停止する。複数回の呼び出しは記録のみで影響はない
func (m *MockMediaTrack) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StopCount++
}

// MockMediaStream はテスト用のモックMediaStream実装
// Stoppableを実装し、ストリーム自体の停止も記録する
type MockMediaStream struct {
	mu    sync.Mutex
	id    string
	video []MediaTrack
	audio []MediaTrack
	stops int
}

// NewMockMediaStream は新しいMockMediaStreamを作成する
func NewMockMediaStream(tracks ...MediaTrack) *MockMediaStream {
	s := &MockMediaStream{
		id: uuid.New().String(),
	}
	for _, track := range tracks {
		s.AddTrack(track)
	}
	return s
}

// ID はストリーム識別子を返す
func (s *MockMediaStream) ID() string {
	return s.id
}

// AddTrack はトラックを種別に応じて追加する
func (s *MockMediaStream) AddTrack(track MediaTrack) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch track.Kind() {
	case TrackAudio:
		s.audio = append(s.audio, track)
	default:
		s.video = append(s.video, track)
	}
}

// VideoTracks は映像トラック一覧を返す
func (s *MockMediaStream) VideoTracks() []MediaTrack {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]MediaTrack(nil), s.video...)
}

// AudioTracks は音声トラック一覧を返す
func (s *MockMediaStream) AudioTracks() []MediaTrack {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]MediaTrack(nil), s.audio...)
}

// Stop はストリーム自体の停止を記録する
func (s *MockMediaStream) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stops++
}

// StopCount はストリーム停止の呼び出し回数を返す
func (s *MockMediaStream) StopCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stops
}

// MockAcquirer はテスト用のモックStreamAcquirer実装
// 取得要求を記録し、設定されたストリームを順に返す
type MockAcquirer struct {
	mu       sync.Mutex
	queue    []MediaStream
	Stream   MediaStream
	Err      error
	Requests []DesiredStreamRequest
}

// NewMockAcquirer は新しいMockAcquirerを作成する
func NewMockAcquirer(stream MediaStream) *MockAcquirer {
	return &MockAcquirer{Stream: stream}
}

// Enqueue は次回以降のAcquireで返すストリームを追加する
func (a *MockAcquirer) Enqueue(stream MediaStream) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.queue = append(a.queue, stream)
}

// Acquire は設定されたストリームを返す
func (a *MockAcquirer) Acquire(_ context.Context, req DesiredStreamRequest) (MediaStream, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.Requests = append(a.Requests, req)

	if a.Err != nil {
		return nil, a.Err
	}

	if len(a.queue) > 0 {
		next := a.queue[0]
		a.queue = a.queue[1:]
		return next, nil
	}

	if a.Stream == nil {
		return nil, fmt.Errorf("ストリームが設定されていません")
	}
	return a.Stream, nil
}

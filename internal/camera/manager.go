package camera

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager は単一のアクティブなキャプチャストリームのライフサイクルを管理する
//
// ストリームの取得は外部のStreamAcquirerに委譲し、取得後の制約交渉、
// 静止画キャプチャ、向きの切り替え、破棄を統合する。ストリームごとに
// 同時に実行する論理的なキャプチャ・交渉は1つに保つのが呼び出し側の
// 規律であり、Managerは取得・切替・破棄の直列化のみをロックで保証する
type Manager struct {
	acquirer   StreamAcquirer
	builder    *ConstraintBuilder
	negotiator *Negotiator
	pipeline   *Pipeline
	mu         sync.RWMutex

	stream    MediaStream
	facing    Facing
	settings  NormalizedSettings
	sessionID string
	openedAt  time.Time
}

// NewManager は新しいManagerを作成する
func NewManager(acquirer StreamAcquirer, builder *ConstraintBuilder, negotiator *Negotiator, pipeline *Pipeline) *Manager {
	if builder == nil {
		builder = NewConstraintBuilder(PlatformGeneric, nil)
	}
	if negotiator == nil {
		negotiator = NewNegotiator(nil, nil)
	}
	if pipeline == nil {
		pipeline = NewPipeline(nil)
	}
	return &Manager{
		acquirer:   acquirer,
		builder:    builder,
		negotiator: negotiator,
		pipeline:   pipeline,
	}
}

// Open は指定した向きでストリームを取得してアクティブにする
//
// 既存のストリームがある場合は破棄してから置き換える。取得の失敗は
// そのまま返し、リトライはしない。取得後は現在の正規化設定で交渉を
// 実行し、その失敗も呼び出し元へ伝播する（ストリームはアクティブのまま）
func (m *Manager) Open(ctx context.Context, facing Facing, width, height *int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	req := m.builder.Build(&facing, width, height)
	stream, err := m.acquirer.Acquire(ctx, req)
	if err != nil {
		return fmt.Errorf("ストリームの取得に失敗: %w", err)
	}

	if m.stream != nil {
		Teardown(m.stream)
	}

	m.stream = stream
	m.facing = facing
	m.sessionID = uuid.New().String()
	m.openedAt = time.Now()

	return m.negotiator.Negotiate(ctx, m.facing, m.stream, m.settings)
}

// SwitchFacing はカメラの向きを切り替える
//
// 新しい向きでストリームを取得し、同一の物理デバイスに解決された場合は
// 取得したストリームを破棄して既存のストリームを使い続ける（冗長な
// 再取得・再設定の回避）。別デバイスの場合は既存ストリームを破棄して
// 置き換え、現在の設定で交渉をやり直す
func (m *Manager) SwitchFacing(ctx context.Context, facing Facing) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stream == nil {
		return ErrNoStream
	}
	if m.facing == facing {
		return nil
	}

	req := m.builder.Build(&facing, nil, nil)
	stream, err := m.acquirer.Acquire(ctx, req)
	if err != nil {
		return fmt.Errorf("ストリームの取得に失敗: %w", err)
	}

	if SameDevice(m.stream, stream) {
		Teardown(stream)
		m.facing = facing
		return nil
	}

	Teardown(m.stream)
	m.stream = stream
	m.facing = facing
	m.sessionID = uuid.New().String()
	m.openedAt = time.Now()

	return m.negotiator.Negotiate(ctx, m.facing, m.stream, m.settings)
}

// ApplySettings は正規化設定を保存し、アクティブなストリームへ交渉・適用する
func (m *Manager) ApplySettings(ctx context.Context, settings NormalizedSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.settings = settings

	if m.stream == nil {
		return ErrNoStream
	}
	return m.negotiator.Negotiate(ctx, m.facing, m.stream, m.settings)
}

// CaptureStill は先頭の映像トラックの現在フレームから静止画を生成する
func (m *Manager) CaptureStill(ctx context.Context, opts CaptureOptions) (*CapturedPicture, error) {
	m.mu.RLock()
	stream := m.stream
	m.mu.RUnlock()

	if stream == nil {
		return nil, ErrNoStream
	}

	tracks := stream.VideoTracks()
	if len(tracks) == 0 {
		return nil, fmt.Errorf("映像トラックがありません")
	}

	source, ok := tracks[0].(FrameSource)
	if !ok {
		return nil, fmt.Errorf("トラック %s はフレーム取得に対応していません", tracks[0].DeviceID())
	}

	frame, err := source.Frame(ctx)
	if err != nil {
		return nil, fmt.Errorf("フレームの取得に失敗: %w", err)
	}

	settings := tracks[0].Settings()
	return m.pipeline.Capture(frame, &settings, opts)
}

// Close はアクティブなストリームを破棄する。ストリームがなければ何もしない
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	Teardown(m.stream)
	m.stream = nil
	m.sessionID = ""
}

// Active はアクティブなストリームの有無を返す
func (m *Manager) Active() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stream != nil
}

// Facing は現在のカメラの向きを返す
func (m *Manager) Facing() Facing {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.facing
}

// SessionID は現在のセッション識別子を返す。非アクティブ時は空文字列
func (m *Manager) SessionID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessionID
}

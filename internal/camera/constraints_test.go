package camera

import "testing"

func intPtr(v int) *int {
	return &v
}

func facingPtr(f Facing) *Facing {
	return &f
}

// フル機能の実行環境を模した制約サポート
func fullSupport() StaticConstraintSupport {
	return StaticConstraintSupport{
		"facingMode": true,
		"width":      true,
		"height":     true,
	}
}

func TestBuild_FullySpecifiedReturnsBaseline(t *testing.T) {
	builder := NewConstraintBuilder(PlatformGeneric, fullSupport())

	// 向き・幅・高さが全て明示されている場合は最小限の要求をそのまま返す
	req := builder.Build(facingPtr(FacingBack), intPtr(1280), intPtr(720))

	if req.Video.Kind != VideoConstraintBool || !req.Video.Enabled {
		t.Errorf("Expected baseline bool video constraint, got %+v", req.Video)
	}
	if req.Audio {
		t.Error("Audio should be disabled")
	}
}

func TestBuild_NoSupportFallsBack(t *testing.T) {
	testCases := []struct {
		name    string
		support ConstraintSupport
	}{
		{"報告不能", nil},
		{"空の報告", StaticConstraintSupport{}},
		{"facingMode非対応", StaticConstraintSupport{"width": true, "height": true}},
		{"解像度非対応", StaticConstraintSupport{"facingMode": true}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			builder := NewConstraintBuilder(PlatformGeneric, tc.support)
			req := builder.Build(facingPtr(FacingBack), nil, nil)

			if req.Video.Kind != VideoConstraintBool || !req.Video.Enabled {
				t.Errorf("Expected baseline request, got %+v", req.Video)
			}
		})
	}
}

func TestBuild_WebKitUserFacingExact(t *testing.T) {
	builder := NewConstraintBuilder(PlatformWebKit, fullSupport())

	req := builder.Build(facingPtr(FacingFront), nil, nil)

	if req.Video.Kind != VideoConstraintStructured {
		t.Fatalf("Expected structured constraint, got %+v", req.Video)
	}
	if req.Video.FacingMode == nil {
		t.Fatal("facingMode constraint missing")
	}
	if req.Video.FacingMode.Exact != "user" {
		t.Errorf("Expected exact 'user', got %q", req.Video.FacingMode.Exact)
	}
	if req.Video.FacingMode.Ideal != "" {
		t.Errorf("Expected no ideal, got %q", req.Video.FacingMode.Ideal)
	}
}

func TestBuild_WebKitEnvironmentFacingIdeal(t *testing.T) {
	builder := NewConstraintBuilder(PlatformWebKit, fullSupport())

	req := builder.Build(facingPtr(FacingBack), nil, nil)

	if req.Video.FacingMode == nil {
		t.Fatal("facingMode constraint missing")
	}
	if req.Video.FacingMode.Ideal != "environment" {
		t.Errorf("Expected ideal 'environment', got %q", req.Video.FacingMode.Ideal)
	}
	if req.Video.FacingMode.Exact != "" {
		t.Errorf("Expected no exact, got %q", req.Video.FacingMode.Exact)
	}
}

func TestBuild_GenericAlwaysIdeal(t *testing.T) {
	builder := NewConstraintBuilder(PlatformGeneric, fullSupport())

	req := builder.Build(facingPtr(FacingFront), nil, nil)

	if req.Video.FacingMode == nil {
		t.Fatal("facingMode constraint missing")
	}
	if req.Video.FacingMode.Ideal != "user" {
		t.Errorf("Expected ideal 'user', got %q", req.Video.FacingMode.Ideal)
	}
	if req.Video.FacingMode.Exact != "" {
		t.Errorf("Expected no exact, got %q", req.Video.FacingMode.Exact)
	}
}

func TestBuild_UnrecognizedFacing(t *testing.T) {
	builder := NewConstraintBuilder(PlatformGeneric, fullSupport())

	// 認識できない向きはfacingMode制約を設定しない
	req := builder.Build(facingPtr(Facing("sideways")), nil, nil)

	if req.Video.Kind != VideoConstraintStructured {
		t.Fatalf("Expected structured constraint, got %+v", req.Video)
	}
	if req.Video.FacingMode != nil {
		t.Errorf("Expected no facingMode, got %+v", req.Video.FacingMode)
	}
}

func TestBuild_DimensionsOnStructuredConstraint(t *testing.T) {
	builder := NewConstraintBuilder(PlatformGeneric, fullSupport())

	req := builder.Build(facingPtr(FacingBack), intPtr(1920), nil)

	if req.Video.Width == nil || *req.Video.Width != 1920 {
		t.Errorf("Expected width 1920, got %v", req.Video.Width)
	}
	if req.Video.Height != nil {
		t.Errorf("Expected no height, got %v", req.Video.Height)
	}
}

func TestBuild_NoFacingPreference(t *testing.T) {
	builder := NewConstraintBuilder(PlatformGeneric, fullSupport())

	req := builder.Build(nil, intPtr(640), intPtr(480))

	if req.Video.Kind != VideoConstraintStructured {
		t.Fatalf("Expected structured constraint, got %+v", req.Video)
	}
	if req.Video.FacingMode != nil {
		t.Error("Expected no facingMode constraint")
	}
	if req.Video.Width == nil || *req.Video.Width != 640 {
		t.Errorf("Expected width 640, got %v", req.Video.Width)
	}
	if req.Video.Height == nil || *req.Video.Height != 480 {
		t.Errorf("Expected height 480, got %v", req.Video.Height)
	}
}

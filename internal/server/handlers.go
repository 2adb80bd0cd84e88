package server

import (
	"errors"
	"net/http"
	"time"

	"setsuna/internal/camera"
	"setsuna/internal/config"
	"setsuna/internal/generated"

	"github.com/gin-gonic/gin"
)

// SetsunaHandler は生成されたServerInterfaceを実装する
type SetsunaHandler struct {
	config  *config.Config
	manager *camera.Manager
}

// NewHandler は新しいSetsunaHandlerを作成する
func NewHandler(cfg *config.Config, manager *camera.Manager) *SetsunaHandler {
	return &SetsunaHandler{
		config:  cfg,
		manager: manager,
	}
}

// HealthCheck はヘルスチェックエンドポイントの実装
func (h *SetsunaHandler) HealthCheck(c *gin.Context) {
	response := generated.HealthResponse{
		Status:    generated.Healthy,
		Timestamp: time.Now(),
	}

	c.JSON(http.StatusOK, response)
}

// GetStatus はシステム状態取得エンドポイントの実装
func (h *SetsunaHandler) GetStatus(c *gin.Context) {
	response := generated.StatusResponse{
		Status: generated.Running,
		Server: generated.ServerInfo{
			Host: h.config.Server.Host,
			Port: h.config.Server.Port,
		},
		Facing:    string(h.manager.Facing()),
		Active:    h.manager.Active(),
		Timestamp: time.Now(),
	}

	if session := h.manager.SessionID(); session != "" {
		response.SessionId = &session
	}

	c.JSON(http.StatusOK, response)
}

// CapturePicture は静止画キャプチャエンドポイントの実装
func (h *SetsunaHandler) CapturePicture(c *gin.Context, params generated.CapturePictureParams) {
	opts := camera.CaptureOptions{
		ImageType: camera.ImageType(h.config.Camera.ImageType),
	}

	if params.Scale != nil {
		scale := float64(*params.Scale)
		opts.Scale = &scale
	}
	if params.ImageType != nil {
		opts.ImageType = camera.ImageType(*params.ImageType)
	}
	if params.Quality != nil {
		quality := float64(*params.Quality)
		opts.Quality = &quality
	}
	if params.Mirror != nil {
		opts.Mirror = *params.Mirror
	}

	picture, err := h.manager.CaptureStill(c.Request.Context(), opts)
	if err != nil {
		switch {
		case errors.Is(err, camera.ErrNoStream):
			c.JSON(http.StatusServiceUnavailable, errorResponse("no_active_stream", err))
		case errors.Is(err, camera.ErrInvalidImageType), errors.Is(err, camera.ErrInvalidQuality):
			c.JSON(http.StatusBadRequest, errorResponse("invalid_capture_options", err))
		default:
			c.JSON(http.StatusInternalServerError, errorResponse("capture_failed", err))
		}
		return
	}

	response := generated.Picture{
		Uri:    picture.URI,
		Base64: picture.Base64,
		Width:  picture.Width,
		Height: picture.Height,
	}
	if picture.DeviceSettings != nil {
		response.DeviceSettings = &generated.DeviceSettings{
			Width:      picture.DeviceSettings.Width,
			Height:     picture.DeviceSettings.Height,
			FacingMode: optionalString(picture.DeviceSettings.FacingMode),
			DeviceId:   optionalString(picture.DeviceSettings.DeviceID),
		}
	}

	c.JSON(http.StatusOK, response)
}

// UpdateSettings は正規化設定適用エンドポイントの実装
func (h *SetsunaHandler) UpdateSettings(c *gin.Context) {
	var body generated.UpdateSettingsJSONRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid_request_body", err))
		return
	}

	settings := toNormalizedSettings(body)

	if err := h.manager.ApplySettings(c.Request.Context(), settings); err != nil {
		if errors.Is(err, camera.ErrNoStream) {
			c.JSON(http.StatusServiceUnavailable, errorResponse("no_active_stream", err))
			return
		}
		// 制約適用の失敗はリトライせず呼び出し元へ伝播する
		c.JSON(http.StatusBadGateway, errorResponse("constraint_apply_failed", err))
		return
	}

	c.Status(http.StatusNoContent)
}

// SetFacing はカメラの向き切り替えエンドポイントの実装
func (h *SetsunaHandler) SetFacing(c *gin.Context) {
	var body generated.SetFacingJSONRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid_request_body", err))
		return
	}

	var facing camera.Facing
	switch body.Facing {
	case generated.Front:
		facing = camera.FacingFront
	case generated.Back:
		facing = camera.FacingBack
	default:
		c.JSON(http.StatusBadRequest, errorResponse("invalid_facing", errors.New("向きはfrontまたはbackを指定してください")))
		return
	}

	if err := h.manager.SwitchFacing(c.Request.Context(), facing); err != nil {
		if errors.Is(err, camera.ErrNoStream) {
			c.JSON(http.StatusServiceUnavailable, errorResponse("no_active_stream", err))
			return
		}
		c.JSON(http.StatusBadGateway, errorResponse("stream_acquisition_failed", err))
		return
	}

	c.Status(http.StatusNoContent)
}

// ヘルパー関数

// toNormalizedSettings はAPIリクエストを正規化設定へ変換する
func toNormalizedSettings(body generated.SettingsRequest) camera.NormalizedSettings {
	return camera.NormalizedSettings{
		Zoom:                 toFloat64(body.Zoom),
		ExposureCompensation: toFloat64(body.ExposureCompensation),
		ColorTemperature:     toFloat64(body.ColorTemperature),
		ISO:                  toFloat64(body.Iso),
		Brightness:           toFloat64(body.Brightness),
		Contrast:             toFloat64(body.Contrast),
		Saturation:           toFloat64(body.Saturation),
		Sharpness:            toFloat64(body.Sharpness),
		FocusDepth:           toFloat64(body.FocusDepth),
		FlashMode:            body.FlashMode,
		AutoFocus:            body.AutoFocus,
		WhiteBalance:         body.WhiteBalance,
	}
}

// toFloat64 はfloat32のポインタをfloat64のポインタへ変換する
func toFloat64(v *float32) *float64 {
	if v == nil {
		return nil
	}
	converted := float64(*v)
	return &converted
}

// optionalString は空文字列をnilに変換する
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// errorResponse はエラーレスポンスを作成する
func errorResponse(code string, err error) generated.ErrorResponse {
	return generated.ErrorResponse{
		Error:     code,
		Message:   err.Error(),
		Timestamp: time.Now(),
	}
}

package captchaimg

import (
	"bytes"
	"strings"

	"phantom-mask/internal/pkg/config"
	"phantom-mask/internal/pkg/errs"

	"github.com/dchest/captcha"
	"github.com/google/uuid"
)

var ErrUnrenderable = errs.New("captcha answer must contain only digits")

// Renderer issues digit answers and draws them with dchest/captcha.
type Renderer struct {
	length int
	width  int
	height int
}

func NewRenderer(cfg config.CaptchaConfig) *Renderer {
	return &Renderer{
		length: cfg.Length,
		width:  cfg.Width,
		height: cfg.Height,
	}
}

func (r *Renderer) NewAnswer() string {
	digits := captcha.RandomDigits(r.length)
	var sb strings.Builder
	for _, d := range digits {
		sb.WriteByte('0' + d)
	}
	return sb.String()
}

func (r *Renderer) RenderPNG(answer string) ([]byte, error) {
	digits := make([]byte, 0, len(answer))
	for _, ch := range answer {
		if ch < '0' || ch > '9' {
			return nil, errs.WithDetail(ErrUnrenderable, answer)
		}
		digits = append(digits, byte(ch-'0'))
	}

	// the id only seeds the distortion noise
	img := captcha.NewImage(uuid.NewString(), digits, r.width, r.height)

	var buf bytes.Buffer
	if _, err := img.WriteTo(&buf); err != nil {
		return nil, errs.Wrap(err, "failed to encode captcha png")
	}
	return buf.Bytes(), nil
}

package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputConfig cấu hình ô nhập text
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// SelectConfig cấu hình danh sách chọn một
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Help         string
	PageSize     int
	// Filter quyết định lựa chọn có hiện khi người dùng gõ bộ lọc; nil dùng bộ lọc mặc định
	Filter func(filter, option string) bool
}

// Driver tách phần giao tiếp terminal khỏi luồng form để test không cần terminal thật
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
	Info(ctx context.Context, msg string) error
}

type askFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

type surveyDriver struct {
	out    io.Writer
	askOne askFunc
}

// NewSurveyDriver driver dùng survey trên stdin/stdout
func NewSurveyDriver() Driver {
	return &surveyDriver{out: os.Stdout, askOne: survey.AskOne}
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	var opts []survey.AskOpt
	if cfg.Validator != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return cfg.Validator(s)
		}))
	}
	if err := d.askOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	prompt := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
		Help:    cfg.Help,
	}
	if cfg.PageSize > 0 {
		prompt.PageSize = cfg.PageSize
	}
	if cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		prompt.Default = cfg.DefaultIndex
	}
	if cfg.Filter != nil {
		prompt.Filter = func(filter, value string, _ int) bool {
			return cfg.Filter(filter, value)
		}
	}
	// nhận index thay vì nhãn: nhãn có thể trùng (nhiều "Phường 1" trong một tỉnh)
	var idx int
	if err := d.askOne(prompt, &idx); err != nil {
		return 0, translateSurveyErr(err)
	}
	return idx, nil
}

func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

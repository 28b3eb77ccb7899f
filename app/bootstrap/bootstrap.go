// Package bootstrap dựng các thành phần của service từ cấu hình:
// logger, dataset hành chính, validator và các service form.
package bootstrap

import (
	"fmt"
	"strconv"

	"github.com/shipping-form/app/config"
	"github.com/shipping-form/app/services"
	"github.com/shipping-form/internal/form"
	"github.com/shipping-form/internal/geo"
	"go.uber.org/zap"
)

// NewLogger khởi tạo structured logger theo môi trường
func NewLogger(env string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	return cfg.Build()
}

// NewCascader nạp dataset theo geo.shape và tạo cascader tương ứng
func NewCascader(cfg config.GeoCfg, logger *zap.Logger) (geo.Cascader, error) {
	shape, err := geo.ParseShape(cfg.Shape)
	if err != nil {
		return nil, err
	}

	switch shape {
	case geo.ShapeFlat:
		policy, err := geo.ParseMatchPolicy(cfg.MatchPolicy)
		if err != nil {
			return nil, err
		}
		ds, err := geo.LoadFlatFiles(cfg.ProvincesPath, cfg.WardsPath)
		if err != nil {
			return nil, fmt.Errorf("lỗi nạp dataset phẳng: %w", err)
		}
		logger.Info("Đã nạp dataset phẳng",
			zap.Int("provinces", len(ds.Provinces)),
			zap.Int("wards", len(ds.Wards)),
			zap.String("match_policy", string(policy)))
		return geo.NewFlatCascader(ds, policy), nil
	default:
		provinces, err := geo.LoadNestedFile(cfg.NestedPath)
		if err != nil {
			return nil, fmt.Errorf("lỗi nạp dataset dạng cây: %w", err)
		}
		logger.Info("Đã nạp dataset dạng cây", zap.Int("provinces", len(provinces)))
		return geo.NewNestedCascader(provinces), nil
	}
}

// Profile profile validation theo dạng dataset, ghi đè bởi form.dob_format và form.province_required
func Profile(cfg config.FormCfg, shape geo.Shape) (form.Profile, error) {
	p := form.ProfileFor(shape)

	switch cfg.DOBFormat {
	case "", "auto":
	case string(form.DOBISO), string(form.DOBDMY):
		p.DOBFormat = form.DOBFormat(cfg.DOBFormat)
	default:
		return p, fmt.Errorf("form.dob_format không hợp lệ: %q", cfg.DOBFormat)
	}

	switch cfg.ProvinceRequired {
	case "", "auto":
	default:
		b, err := strconv.ParseBool(cfg.ProvinceRequired)
		if err != nil {
			return p, fmt.Errorf("form.province_required không hợp lệ: %q", cfg.ProvinceRequired)
		}
		p.ProvinceRequired = b
	}
	return p, nil
}

// NewValidator dựng validator và chế độ validate từ form.* theo dạng dataset
func NewValidator(cfg config.FormCfg, shape geo.Shape) (*form.Validator, form.Mode, error) {
	profile, err := Profile(cfg, shape)
	if err != nil {
		return nil, "", err
	}
	mode, err := form.ParseMode(cfg.ValidateOn)
	if err != nil {
		return nil, "", err
	}
	validator, err := form.NewValidator(profile)
	if err != nil {
		return nil, "", err
	}
	return validator, mode, nil
}

// NewSubmissionService SubmissionService ghi payload ra log
func NewSubmissionService(logger *zap.Logger) *services.SubmissionService {
	return services.NewSubmissionService(services.NewLogSink(logger), logger)
}

// NewFormService dựng FormService hoàn chỉnh với LogSink
func NewFormService(cfg *config.Config, cascader geo.Cascader, logger *zap.Logger) (*services.FormService, error) {
	validator, mode, err := NewValidator(cfg.Form, cascader.Shape())
	if err != nil {
		return nil, err
	}
	return services.NewFormService(cascader, validator, mode, NewSubmissionService(logger), cfg.Sessions.Max, logger)
}

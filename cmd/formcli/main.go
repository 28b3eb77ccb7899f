package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shipping-form/app/bootstrap"
	"github.com/shipping-form/app/config"
	"github.com/shipping-form/internal/form"
	"github.com/shipping-form/internal/prompt"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "đường dẫn file cấu hình (mặc định config/app.yaml)")
	verbose := flag.Bool("verbose", false, "ghi log ra stderr")
	pageSize := flag.Int("page-size", 10, "số dòng hiển thị của danh sách chọn")
	flag.Parse()

	if err := run(*configPath, *verbose, *pageSize); err != nil {
		if errors.Is(err, prompt.ErrAborted) || errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Đã hủy.")
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "Lỗi:", err)
		os.Exit(1)
	}
}

func run(configPath string, verbose bool, pageSize int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if verbose {
		if logger, err = bootstrap.NewLogger(cfg.App.Env); err != nil {
			return err
		}
	}
	defer logger.Sync()

	cascader, err := bootstrap.NewCascader(cfg.Geo, logger)
	if err != nil {
		return err
	}
	validator, mode, err := bootstrap.NewValidator(cfg.Form, cascader.Shape())
	if err != nil {
		return err
	}

	dobHelp := "yyyy-mm-dd"
	if validator.Profile().DOBFormat == form.DOBDMY {
		dobHelp = "dd/mm/yyyy"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := prompt.NewRunner(
		prompt.NewSurveyDriver(),
		form.New(cascader, validator, form.WithMode(mode)),
		bootstrap.NewSubmissionService(logger),
		logger,
		prompt.WithDOBHelp(dobHelp),
		prompt.WithPageSize(pageSize),
	)
	receipt, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Mã xác nhận: %s\n", receipt.ID)
	return nil
}

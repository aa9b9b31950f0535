package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/agileflow-probe/internal/config"
	"github.com/darkkaiser/agileflow-probe/internal/pkg/version"
	"github.com/darkkaiser/agileflow-probe/internal/service/api"
	"github.com/darkkaiser/agileflow-probe/internal/service/contract"
	"github.com/darkkaiser/agileflow-probe/internal/service/monitor"
	"github.com/darkkaiser/agileflow-probe/internal/service/monitor/storage"
	"github.com/darkkaiser/agileflow-probe/internal/service/notification"
	"github.com/darkkaiser/agileflow-probe/internal/service/notification/notifier"
	"github.com/darkkaiser/agileflow-probe/internal/service/notification/notifier/telegram"
	applog "github.com/darkkaiser/agileflow-probe/pkg/log"
	"github.com/spf13/cobra"
)

const banner = `
--------------------------------------------------------------------------------
  AgileFlow Probe %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`

func newServeCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "점검 대상을 주기적으로 점검하고 상태 API를 제공합니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), configFile)
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", config.DefaultFilename, "설정 파일 경로")

	return cmd
}

func serve(ctx context.Context, configFile string) error {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.LoadWithFile(configFile)
	if err != nil {
		return fmt.Errorf("환경설정 로드 실패: %w", err)
	}

	// 2. 로그 시스템 초기화
	logOpts := applog.NewProductionOptions(config.AppName)
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		return fmt.Errorf("로그 시스템 초기화 실패: %w", err)
	}
	defer appLogCloser.Close()

	buildInfo := version.Get()

	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
		"targets": len(appConfig.Targets),
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	// 서비스를 생성하고 초기화한다.
	store, err := storage.NewFileSnapshotStore(appConfig.Storage.Dir)
	if err != nil {
		return err
	}

	notificationService := notification.NewService(appConfig, notifier.NewFactory(telegram.NewCreator()))
	monitorService := monitor.NewService(appConfig, notificationService, store)
	apiService := api.NewService(appConfig, monitorService, notificationService, buildInfo)

	serviceStopCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다. 알림 서비스가 먼저 실행되어야 모니터가 상태 변화를 알릴 수 있다.
	services := []contract.Service{notificationService, monitorService, apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 다른 서비스들도 종료
			serviceStopWG.Wait()

			return fmt.Errorf("서비스 초기화 실패: %w", err)
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(termC)

	applog.WithComponent("main").Info("서버 가동 완료")

	select {
	case sig := <-termC:
		applog.WithComponentAndFields("main", applog.Fields{
			"signal": sig.String(),
		}).Info("종료 시그널 수신")
	case <-ctx.Done():
	}

	cancel()
	serviceStopWG.Wait()

	applog.WithComponent("main").Info("서버 종료 완료")

	return nil
}

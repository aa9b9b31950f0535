package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/darkkaiser/agileflow-probe/internal/config"
	"github.com/darkkaiser/agileflow-probe/internal/readiness"
	"github.com/darkkaiser/agileflow-probe/internal/readiness/fetcher"
	applog "github.com/darkkaiser/agileflow-probe/pkg/log"
	"github.com/spf13/cobra"
)

// probeFlags check, wait 명령이 공유하는 플래그
type probeFlags struct {
	baseURL string
	verbose bool

	healthTimeout time.Duration
	readyTimeout  time.Duration
}

func (f *probeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.baseURL, "base-url", "", "점검할 AgileFlow 백엔드의 기준 URL (예: http://localhost:8080)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "점검 과정의 상세 로그를 표준 에러로 출력합니다")
	cmd.Flags().DurationVar(&f.healthTimeout, "health-timeout", readiness.DefaultHealthTimeout, "/api/health 요청 한 건의 타임아웃")
	cmd.Flags().DurationVar(&f.readyTimeout, "ready-timeout", readiness.DefaultReadyTimeout, "/api/ready 요청 한 건의 타임아웃")

	_ = cmd.MarkFlagRequired("base-url")
}

// newPoller 로그를 설정하고 플래그로 Poller를 생성합니다.
func (f *probeFlags) newPoller(opts ...readiness.Option) (*readiness.Poller, error) {
	if _, err := applog.Setup(applog.NewCLIOptions(config.AppName, f.verbose)); err != nil {
		return nil, err
	}

	opts = append([]readiness.Option{
		readiness.WithHealthTimeout(f.healthTimeout),
		readiness.WithReadyTimeout(f.readyTimeout),
	}, opts...)

	return readiness.New(f.baseURL, opts...)
}

func newCheckCommand() *cobra.Command {
	var flags probeFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "health와 ready 엔드포인트를 한 번 점검합니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			poller, err := flags.newPoller()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return report(cmd, poller.BaseURL(), poller.CheckOnce(ctx))
		},
	}
	flags.register(cmd)

	return cmd
}

func newWaitCommand() *cobra.Command {
	var (
		flags        probeFlags
		maxWait      time.Duration
		pollInterval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "wait",
		Short: "대상이 준비될 때까지 일정 간격으로 점검합니다",
		Long: `health와 ready 엔드포인트가 모두 정상이 될 때까지 --interval 간격으로 점검합니다.
--max-wait 안에 준비되지 않으면 종료 코드 1로 끝납니다.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			poller, err := flags.newPoller(
				readiness.WithMaxWait(maxWait),
				readiness.WithPollInterval(pollInterval),
			)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return report(cmd, poller.BaseURL(), poller.WaitUntilReady(ctx))
		},
	}
	flags.register(cmd)
	cmd.Flags().DurationVar(&maxWait, "max-wait", readiness.DefaultMaxWait, "최대 대기 시간")
	cmd.Flags().DurationVar(&pollInterval, "interval", readiness.DefaultPollInterval, "점검 간격")

	return cmd
}

// report 점검 결과를 출력하고, 준비되지 않았으면 errNotReady를 반환합니다.
func report(cmd *cobra.Command, baseURL string, ready bool) error {
	baseURL = fetcher.RedactRawURL(baseURL)

	if !ready {
		fmt.Fprintf(cmd.OutOrStdout(), "not ready: %s\n", baseURL)
		return errNotReady
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ready: %s\n", baseURL)
	return nil
}

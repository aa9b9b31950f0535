package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/darkkaiser/agileflow-probe/internal/config"
	"github.com/darkkaiser/agileflow-probe/internal/pkg/version"
	"github.com/spf13/cobra"
)

// 프로세스 종료 코드
const (
	exitReady    = 0
	exitNotReady = 1

	// exitUsage 잘못된 인자나 설정 등 점검을 수행하지 못한 경우
	exitUsage = 2
)

// errNotReady 대상이 준비되지 않았음을 나타냅니다. 메시지 없이 exitNotReady로 종료됩니다.
var errNotReady = errors.New("대상 서비스가 준비되지 않았습니다")

// run 명령을 실행하고 프로세스 종료 코드를 반환합니다.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errNotReady) {
			return exitNotReady
		}

		fmt.Fprintf(stderr, "[ERROR] %v\n", err)
		return exitUsage
	}

	return exitReady
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "AgileFlow 백엔드의 health/ready 엔드포인트 점검 도구",
		Long: `agileflow-probe는 AgileFlow 백엔드의 /api/health와 /api/ready 엔드포인트를 점검합니다.

  check  한 번 점검하고 결과를 종료 코드로 반환합니다 (0: 준비됨, 1: 준비되지 않음)
  wait   준비될 때까지 일정 간격으로 점검합니다 (배포 게이트, init container 용도)
  serve  설정 파일의 점검 대상을 주기적으로 점검하고 상태 API를 제공합니다`,
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newWaitCommand())
	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "빌드 정보를 출력합니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", config.AppName, version.Get())
			return err
		},
	}
}

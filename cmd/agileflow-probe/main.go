package main

import (
	"os"
)

// @title AgileFlow Probe API
// @version 1.0.0
// @description AgileFlow 백엔드의 health/ready 엔드포인트를 주기적으로 점검하는 agileflow-probe의 상태 조회 API입니다.
// @description
// @description ## 주요 기능
// @description - 점검 대상별 준비 상태 조회 (/api/v1/targets)
// @description - AgileFlow 백엔드와 같은 /api/health, /api/ready 계약
// @description
// @description /api/ready는 모든 점검 대상에 대한 첫 번째 점검 라운드가 끝난 뒤에 200을 반환하므로,
// @description agileflow-probe 자신도 `agileflow-probe wait --base-url` 명령으로 점검할 수 있습니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT

// @BasePath /

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

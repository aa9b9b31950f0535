package contract

import (
	"context"
	"sync"
)

// Service 애플리케이션 생명주기에 맞춰 시작되고 종료되는 백그라운드 서비스입니다.
type Service interface {
	// Start 서비스를 시작합니다.
	//
	// serviceStopWG는 호출 전에 Add(1)된 상태로 전달되며, 서비스는 ctx가 취소되어 모든 정리 작업을 마친 뒤
	// (또는 시작에 실패하여 에러를 반환할 때) 반드시 Done()을 호출해야 합니다.
	Start(ctx context.Context, serviceStopWG *sync.WaitGroup) error
}

/*
Package validation 설정 파일과 명령행 인자로 들어오는 값의 형식을 검사합니다.

주요 기능:

  - 점검 대상 URL(http/https 절대 URL) 검증
  - CORS Origin 검증
  - Cron 표현식 검증 (초 단위 6필드 및 @every 등 디스크립터)

모든 함수는 상태를 갖지 않으므로 여러 고루틴에서 동시에 호출해도 안전합니다.
*/
package validation

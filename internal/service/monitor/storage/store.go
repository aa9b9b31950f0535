// Package storage 대상별 상태 스냅샷을 JSON 파일로 보관하는 저장소를 제공합니다.
//
// 모니터는 재시작 후에도 직전 상태를 알아야 같은 상태 전이를 다시 알리지 않습니다.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/darkkaiser/agileflow-probe/pkg/concurrency"
	applog "github.com/darkkaiser/agileflow-probe/pkg/log"
)

const component = "monitor.storage"

const (
	defaultDir = "data"

	tempFilePattern = "target-snapshot-*.tmp"

	// staleTempFileAge 이보다 오래된 임시 파일은 비정상 종료로 남은 것으로 보고 삭제합니다.
	staleTempFileAge = time.Hour

	renameMaxRetries = 5
	renameRetryDelay = 10 * time.Millisecond
)

// SnapshotStore 대상 ID 단위로 임의의 값을 저장하고 읽어오는 저장소입니다.
type SnapshotStore interface {
	// Load 저장된 스냅샷을 v(포인터)로 역직렬화합니다. 파일이 없으면 ErrSnapshotNotFound를 반환합니다.
	Load(targetID string, v any) error

	// Save v를 JSON으로 직렬화하여 원자적으로 저장합니다.
	Save(targetID string, v any) error
}

// FileSnapshotStore 파일 시스템 기반 SnapshotStore 구현체입니다.
//
// [파일 구조]
//   - target-{id}-{hash}.json: 대상별 스냅샷
//   - target-snapshot-*.tmp: 저장 중 생성되는 임시 파일
type FileSnapshotStore struct {
	baseDir string

	// locks 같은 파일에 대한 동시 읽기/쓰기를 직렬화합니다. 키는 소문자로 정규화한 파일 경로입니다.
	locks *concurrency.KeyedMutex
}

var _ SnapshotStore = (*FileSnapshotStore)(nil)

// NewFileSnapshotStore dir 아래에 스냅샷을 저장하는 저장소를 생성합니다.
//
// dir이 비어 있으면 "data"를 사용하며, 상대 경로는 절대 경로로 변환됩니다.
// 디렉토리를 미리 생성하고 이전 실행에서 남은 오래된 임시 파일을 정리합니다.
func NewFileSnapshotStore(dir string) (*FileSnapshotStore, error) {
	if dir == "" {
		dir = defaultDir
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, newErrStoreInitFailed(err, dir)
	}
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, newErrStoreInitFailed(err, absDir)
	}

	s := &FileSnapshotStore{
		baseDir: absDir,
		locks:   concurrency.NewKeyedMutex(),
	}

	s.cleanupStaleTempFiles(time.Now().Add(-staleTempFileAge))

	return s, nil
}

// Dir 스냅샷 파일이 저장되는 절대 경로를 반환합니다.
func (s *FileSnapshotStore) Dir() string {
	return s.baseDir
}

func (s *FileSnapshotStore) cleanupStaleTempFiles(threshold time.Time) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"dir":   s.baseDir,
			"error": err,
		}).Warn("임시 파일 정리 중단: 디렉토리 조회 실패")

		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if matched, _ := filepath.Match(tempFilePattern, entry.Name()); !matched {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(threshold) {
			continue
		}

		path := filepath.Join(s.baseDir, entry.Name())
		if err := os.Remove(path); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"file":  path,
				"error": err,
			}).Warn("임시 파일 삭제 실패")

			continue
		}

		applog.WithComponentAndFields(component, applog.Fields{
			"file": path,
		}).Info("이전 실행에서 남은 임시 파일을 삭제했습니다")
	}
}

// Load 읽기에도 락을 잡아 쓰기 도중의 파일을 읽지 않도록 합니다.
// 역직렬화는 락 밖에서 수행합니다.
func (s *FileSnapshotStore) Load(targetID string, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrLoadRequiresPointer
	}

	path, err := s.resolveSafePath(targetID)
	if err != nil {
		return err
	}

	var data []byte
	err = s.locks.WithLock(strings.ToLower(path), func() error {
		var readErr error
		if data, readErr = os.ReadFile(path); readErr != nil {
			if os.IsNotExist(readErr) {
				return ErrSnapshotNotFound
			}
			return newErrSnapshotReadFailed(readErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return newErrSnapshotDecodeFailed(err)
	}

	return nil
}

// Save 임시 파일 쓰기 → fsync → rename 순서로 저장하여 중간 상태의 파일이 남지 않도록 합니다.
func (s *FileSnapshotStore) Save(targetID string, v any) error {
	path, err := s.resolveSafePath(targetID)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return newErrSnapshotEncodeFailed(err)
	}

	return s.locks.WithLock(strings.ToLower(path), func() error {
		return writeAtomic(path, data)
	})
}

// resolveSafePath 대상 ID로 만든 파일 경로가 저장소 디렉토리 안에 있는지 검증한 뒤 반환합니다.
func (s *FileSnapshotStore) resolveSafePath(targetID string) (string, error) {
	if strings.TrimSpace(targetID) == "" {
		return "", ErrTargetIDRequired
	}

	filename := snapshotFilename(targetID)
	path := filepath.Clean(filepath.Join(s.baseDir, filename))

	// 단순 접두사 비교는 형제 디렉토리("data" vs "data2")를 구분하지 못하므로 Rel로 검사합니다.
	rel, err := filepath.Rel(s.baseDir, path)
	if err != nil {
		return "", newErrPathResolutionFailed(err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		applog.WithComponentAndFields(component, applog.Fields{
			"target_id": targetID,
			"filename":  filename,
			"base_dir":  s.baseDir,
			"rel_path":  rel,
		}).Error("파일 경로 생성 차단: 경로 이탈 시도 감지")

		return "", ErrPathTraversalDetected
	}

	return path, nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return newErrSnapshotWriteFailed(err, "임시 파일 생성")
	}
	tmpPath := tmpFile.Name()

	// Windows에서는 열린 파일을 지울 수 없으므로 Close가 Remove보다 먼저 실행되어야 합니다.
	defer os.Remove(tmpPath)
	defer tmpFile.Close()

	if _, err := tmpFile.Write(data); err != nil {
		return newErrSnapshotWriteFailed(err, "파일 쓰기")
	}
	if err := tmpFile.Sync(); err != nil {
		return newErrSnapshotWriteFailed(err, "디스크 동기화")
	}
	if err := tmpFile.Close(); err != nil {
		return newErrSnapshotWriteFailed(err, "파일 닫기")
	}
	if err := renameWithRetry(tmpPath, path); err != nil {
		return newErrSnapshotWriteFailed(err, "이름 변경")
	}

	// 디렉토리 엔트리 동기화는 실패해도 무시합니다.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	return nil
}

// renameWithRetry 백신이나 인덱서가 파일을 잠시 점유하는 환경(Windows)을 위해 짧게 재시도합니다.
func renameWithRetry(oldPath, newPath string) error {
	var lastErr error
	for range renameMaxRetries {
		if lastErr = os.Rename(oldPath, newPath); lastErr == nil {
			return nil
		}
		time.Sleep(renameRetryDelay)
	}

	return lastErr
}

// Package csv は加入者CSVのインポート/エクスポート機能を提供する。
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oyaguma3/nms-subscriber-console/pkg/apperr"
	"github.com/oyaguma3/nms-subscriber-console/pkg/keycodec"
	"github.com/oyaguma3/nms-subscriber-console/pkg/model"
)

// MaxUploadFileSize はアップロード可能なファイルサイズの上限（10MiB）
const MaxUploadFileSize = 10 * 1024 * 1024

// SubscriberFieldCount は1行あたりの列数
// name, imsi, authKey, authOpc, state, dataPlan, apns（"|"区切り）
const SubscriberFieldCount = 7

// apnSeparator はAPN列内の区切り文字
const apnSeparator = "|"

// File はアップロードされたファイルを表す。
type File struct {
	Name   string
	Size   int64
	Reader io.Reader
}

// LineError は列数が不正な行を表す。
type LineError struct {
	Line string
}

func (e *LineError) Error() string {
	return "failed parsing " + e.Line
}

// Is はapperr.ErrMalformedLineとの比較を可能にする。
func (e *LineError) Is(target error) bool {
	return target == apperr.ErrMalformedLine
}

// FileError はファイル読み込み中の想定外のエラーを表す。
type FileError struct {
	Name  string
	Cause error
}

func (e *FileError) Error() string {
	return "Failed parsing the file " + e.Name + ". " + e.Cause.Error()
}

func (e *FileError) Unwrap() error {
	return e.Cause
}

// OpenSubscriberFile はパスからFileを生成する。
// 返却されたclose関数で呼び出し側がファイルを閉じる。
func OpenSubscriberFile(path string) (*File, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, nil, fmt.Errorf("%s is a directory", path)
	}
	return &File{Name: info.Name(), Size: info.Size(), Reader: f}, f.Close, nil
}

// ParseSubscriberFile は加入者CSVをパースする。
// 1行でも列数が不正な行があれば全体を失敗とし、部分的な結果は返さない。
// サイズ上限の確認は読み込み前に行う。
func ParseSubscriberFile(f *File) ([]*model.SubscriberInfo, error) {
	if f.Size > MaxUploadFileSize {
		return nil, apperr.ErrFileTooLarge
	}

	// 申告サイズと実サイズが異なる場合に備え、上限+1バイトまでに制限して読む
	data, err := io.ReadAll(io.LimitReader(f.Reader, MaxUploadFileSize+1))
	if err != nil {
		return nil, &FileError{Name: f.Name, Cause: err}
	}
	if len(data) > MaxUploadFileSize {
		return nil, apperr.ErrFileTooLarge
	}

	var subscribers []*model.SubscriberInfo
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		info, err := parseSubscriberLine(line)
		if err != nil {
			return nil, err
		}
		subscribers = append(subscribers, info)
	}

	return subscribers, nil
}

func parseSubscriberLine(line string) (*model.SubscriberInfo, error) {
	items := strings.Split(line, ",")
	if len(items) != SubscriberFieldCount {
		return nil, &LineError{Line: line}
	}
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}

	return &model.SubscriberInfo{
		Name:     items[0],
		IMSI:     items[1],
		AuthKey:  items[2],
		AuthOpc:  items[3],
		State:    model.ParseSubscriberState(items[4]),
		DataPlan: items[5],
		APNs:     splitAPNs(items[6]),
	}, nil
}

// splitAPNs はAPN列を分割し、前後の空白を除去して空要素を取り除く。
func splitAPNs(field string) []string {
	apns := []string{}
	for _, apn := range strings.Split(field, apnSeparator) {
		if apn = strings.TrimSpace(apn); apn != "" {
			apns = append(apns, apn)
		}
	}
	return apns
}

// WriteSubscriberCSV は加入者データをインポートと同じ7列形式で書き込む。
// Auth Key/OPCはBase64からHexに戻して出力する。
func WriteSubscriberCSV(w io.Writer, subscribers []*model.Subscriber) error {
	writer := csv.NewWriter(w)

	for _, sub := range subscribers {
		record, err := subscriberRecord(sub)
		if err != nil {
			return fmt.Errorf("failed to encode record for %s: %w", sub.ID, err)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record for %s: %w", sub.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func subscriberRecord(sub *model.Subscriber) ([]string, error) {
	authKey, err := keycodec.Base64ToHex(sub.Lte.AuthKey)
	if err != nil {
		return nil, err
	}

	var authOpc string
	if sub.Lte.AuthOpc != nil {
		if authOpc, err = keycodec.Base64ToHex(*sub.Lte.AuthOpc); err != nil {
			return nil, err
		}
	}

	state := sub.Lte.State
	if state == "" {
		state = model.StateInactive
	}

	return []string{
		sub.Name,
		sub.ID,
		authKey,
		authOpc,
		string(state),
		sub.Lte.SubProfile,
		strings.Join(sub.ActiveAPNs, apnSeparator),
	}, nil
}

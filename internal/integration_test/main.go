// 指示: miu200521358
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/miu200521358/mu_hand_retarget/pkg/adapter/stream"
	"github.com/miu200521358/mu_hand_retarget/pkg/usecase/rinteractor"
)

const (
	batchOutputDirMode = 0o755
)

// batchConfig は一括リプレイの実行設定を表す。
type batchConfig struct {
	InputRoot  string
	OutputRoot string
	DryRun     bool
	FailFast   bool
}

// replayEntry は1記録分のリプレイ入力情報を表す。
type replayEntry struct {
	Index      int
	SourcePath string
	CaseName   string
	OutputPath string
}

// replayResult は1記録分のリプレイ結果を表す。
type replayResult struct {
	Entry      replayEntry
	Status     string
	FrameCount int
	Duration   time.Duration
	Err        error
}

// main は記録済みリグフレームの一括リプレイ検証を実行する。
func main() {
	os.Exit(run())
}

// run は実行設定を解決して一括リプレイを実行し、終了コードを返す。
func run() int {
	config, err := parseBatchConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "設定解析に失敗しました: %v\n", err)
		return 2
	}
	entries, err := buildReplayEntries(config.InputRoot, config.OutputRoot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "入力解決に失敗しました: %v\n", err)
		return 2
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "リプレイ対象の記録がありません")
		return 2
	}

	results := executeBatchReplay(config, entries)
	printBatchSummary(results)

	for _, result := range results {
		if result.Status == "failed" {
			return 1
		}
	}
	return 0
}

// parseBatchConfig はコマンドライン引数から実行設定を構築する。
func parseBatchConfig() (batchConfig, error) {
	defaultRoot, err := resolveDefaultRoot()
	if err != nil {
		return batchConfig{}, err
	}
	inputRoot := flag.String("input-root", filepath.Join(defaultRoot, "recordings"), "リグフレーム記録JSONの入力ルートディレクトリ")
	outputRoot := flag.String("output-root", filepath.Join(defaultRoot, "output"), "リプレイ結果の出力ルートディレクトリ")
	dryRun := flag.Bool("dry-run", false, "実評価せず、入力解決と出力先計画のみ表示する")
	failFast := flag.Bool("fail-fast", false, "失敗時に即時終了する")
	flag.Parse()

	trimmedInputRoot := strings.TrimSpace(*inputRoot)
	if trimmedInputRoot == "" {
		return batchConfig{}, errors.New("input-root が空です")
	}
	trimmedOutputRoot := strings.TrimSpace(*outputRoot)
	if trimmedOutputRoot == "" {
		return batchConfig{}, errors.New("output-root が空です")
	}
	return batchConfig{
		InputRoot:  filepath.Clean(trimmedInputRoot),
		OutputRoot: filepath.Clean(trimmedOutputRoot),
		DryRun:     *dryRun,
		FailFast:   *failFast,
	}, nil
}

// resolveDefaultRoot はスクリプト配置ディレクトリ基準の既定ルートを返す。
func resolveDefaultRoot() (string, error) {
	_, currentFilePath, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("実行ファイル位置を取得できません")
	}
	return filepath.Dir(currentFilePath), nil
}

// buildReplayEntries は入力ルート直下の記録JSON一覧からリプレイ対象エントリを生成する。
func buildReplayEntries(inputRoot string, outputRoot string) ([]replayEntry, error) {
	paths, err := filepath.Glob(filepath.Join(inputRoot, "*.json"))
	if err != nil {
		return nil, err
	}
	entries := make([]replayEntry, 0, len(paths))
	for i, sourcePath := range paths {
		caseName := resolveCaseName(sourcePath)
		entries = append(entries, replayEntry{
			Index:      i + 1,
			SourcePath: sourcePath,
			CaseName:   caseName,
			OutputPath: filepath.Join(outputRoot, fmt.Sprintf("%03d_%s_result.json", i+1, caseName)),
		})
	}
	return entries, nil
}

// executeBatchReplay は全記録のリプレイ評価を順次実行する。
func executeBatchReplay(config batchConfig, entries []replayEntry) []replayResult {
	results := make([]replayResult, 0, len(entries))
	usecase := rinteractor.NewHandRetargetUsecase()

	total := len(entries)
	for _, entry := range entries {
		fmt.Printf("[%d/%d] リプレイ開始: case=%s\n", entry.Index, total, entry.CaseName)
		result := replayRecordingEntry(usecase, config, entry)
		results = append(results, result)
		switch result.Status {
		case "succeeded":
			fmt.Printf("[%d/%d] リプレイ成功: case=%s frames=%d output=%s elapsed=%s\n", entry.Index, total, entry.CaseName, result.FrameCount, entry.OutputPath, result.Duration.Round(time.Millisecond))
		case "dry_run":
			fmt.Printf("[%d/%d] DRY-RUN: case=%s input=%s output=%s\n", entry.Index, total, entry.CaseName, entry.SourcePath, entry.OutputPath)
		default:
			fmt.Printf("[%d/%d] リプレイ失敗: case=%s reason=%v\n", entry.Index, total, entry.CaseName, result.Err)
			if config.FailFast {
				return results
			}
		}
	}
	return results
}

// replayRecordingEntry は1記録分のリプレイ評価を実行する。
func replayRecordingEntry(usecase *rinteractor.HandRetargetUsecase, config batchConfig, entry replayEntry) replayResult {
	result := replayResult{
		Entry:  entry,
		Status: "failed",
	}
	if config.DryRun {
		result.Status = "dry_run"
		return result
	}

	data, err := os.ReadFile(entry.SourcePath)
	if err != nil {
		result.Err = fmt.Errorf("記録読み込みに失敗しました: %w", err)
		return result
	}
	var frames []stream.RigFrameMessage
	if err := json.Unmarshal(data, &frames); err != nil {
		result.Err = fmt.Errorf("記録解析に失敗しました: %w", err)
		return result
	}

	startedAt := time.Now()
	handFrames, err := stream.ReplayFrames(usecase, nil, frames)
	if err != nil {
		result.Err = fmt.Errorf("リプレイ評価に失敗しました: %w", err)
		return result
	}

	if err := os.MkdirAll(filepath.Dir(entry.OutputPath), batchOutputDirMode); err != nil {
		result.Err = fmt.Errorf("出力ディレクトリ作成に失敗しました: %w", err)
		return result
	}
	output, err := json.MarshalIndent(handFrames, "", "  ")
	if err != nil {
		result.Err = fmt.Errorf("結果整形に失敗しました: %w", err)
		return result
	}
	if err := os.WriteFile(entry.OutputPath, output, 0o644); err != nil {
		result.Err = fmt.Errorf("結果保存に失敗しました: %w", err)
		return result
	}

	result.Status = "succeeded"
	result.FrameCount = len(handFrames)
	result.Duration = time.Since(startedAt)
	return result
}

// printBatchSummary はリプレイ結果の集計を標準出力へ表示する。
func printBatchSummary(results []replayResult) {
	succeeded := 0
	failed := 0
	dryRun := 0
	for _, result := range results {
		switch result.Status {
		case "succeeded":
			succeeded++
		case "dry_run":
			dryRun++
		default:
			failed++
		}
	}
	fmt.Printf(
		"一括リプレイサマリ: total=%d succeeded=%d failed=%d dry_run=%d\n",
		len(results),
		succeeded,
		failed,
		dryRun,
	)
}

// resolveCaseName は入力パスから拡張子を除いたケース名を返す。
func resolveCaseName(path string) string {
	base := strings.TrimSpace(filepath.Base(path))
	name := strings.TrimSpace(strings.TrimSuffix(base, filepath.Ext(base)))
	if name == "" {
		return "recording"
	}
	return name
}

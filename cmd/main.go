// 指示: miu200521358
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_hand_retarget/pkg/adapter/rpresenter/messages"
	"github.com/miu200521358/mu_hand_retarget/pkg/adapter/stream"
	"github.com/miu200521358/mu_hand_retarget/pkg/infra/base/mlogging"
	"github.com/miu200521358/mu_hand_retarget/pkg/shared/base/logging"
	"github.com/miu200521358/mu_hand_retarget/pkg/usecase/rinteractor"
)

// options はCLI引数を保持する。
type options struct {
	serveAddr      string
	inputPath      string
	fingertipScale float64
}

// main はリグフレームのリプレイまたはストリーミングサーバを実行する。
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run はCLI処理全体を実行する。
func run(args []string, out io.Writer, errOut io.Writer) error {
	opts, err := parseOptions(args, errOut)
	if err != nil {
		return err
	}

	logger := mlogging.NewLogger(errOut)
	logger.SetLevel(logging.LOG_LEVEL_INFO)
	logging.SetDefaultLogger(logger)

	if opts.serveAddr != "" {
		return runServer(opts, out)
	}
	return runReplay(opts, out)
}

// runServer はWebSocketストリーミングサーバを起動する。
func runServer(opts options, out io.Writer) error {
	usecase := rinteractor.NewHandRetargetUsecase()
	server := stream.NewStreamServer(usecase, nil)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", server.HandleWS)

	fmt.Fprintf(out, messages.LogServeStarted, opts.serveAddr)
	if err := http.ListenAndServe(opts.serveAddr, mux); err != nil {
		return fmt.Errorf("サーバ起動に失敗しました: %w", err)
	}
	return nil
}

// runReplay は記録済みリグフレームを評価し、フレームごとの計測値を出力する。
func runReplay(opts options, out io.Writer) error {
	frames, err := loadRigFrames(opts.inputPath)
	if err != nil {
		return err
	}
	if opts.fingertipScale > 0.0 {
		for frameIdx := range frames {
			frames[frameIdx].FingertipScale = opts.fingertipScale
		}
	}

	usecase := rinteractor.NewHandRetargetUsecase()
	fmt.Fprintf(out, messages.LogReplayStarted, opts.inputPath, len(frames))
	results, err := stream.ReplayFrames(usecase, nil, frames)
	if err != nil {
		return fmt.Errorf("リプレイに失敗しました: %w", err)
	}
	for _, result := range results {
		fmt.Fprintf(out, "frame=%d wrist=(%.4f, %.4f, %.4f) palm=(%.4f, %.4f, %.4f) palmWidth=%.4f\n",
			result.Frame,
			result.WristPosition[0], result.WristPosition[1], result.WristPosition[2],
			result.PalmPosition[0], result.PalmPosition[1], result.PalmPosition[2],
			result.PalmWidth,
		)
	}
	fmt.Fprintf(out, messages.LogReplayFinished, len(results))
	return nil
}

// loadRigFrames はJSONファイルからリグフレーム列を読み込む。
func loadRigFrames(path string) ([]stream.RigFrameMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("リグフレーム読み込みに失敗しました: %w", err)
	}
	var frames []stream.RigFrameMessage
	if err := json.Unmarshal(data, &frames); err != nil {
		return nil, fmt.Errorf("リグフレーム解析に失敗しました: %w", err)
	}
	return frames, nil
}

// parseOptions はCLI引数を解析する。
func parseOptions(args []string, errOut io.Writer) (options, error) {
	fs := flag.NewFlagSet("mu_hand_retarget", flag.ContinueOnError)
	fs.SetOutput(errOut)

	serveAddr := fs.String("serve", "", messages.UsageServeAddr)
	inputPath := fs.String("in", "", messages.UsageInputPath)
	fingertipScale := fs.Float64("scale", 0.0, messages.UsageFingertipScale)
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if *inputPath == "" && fs.NArg() > 0 {
		*inputPath = fs.Arg(0)
	}

	opts := options{
		serveAddr:      strings.TrimSpace(*serveAddr),
		inputPath:      strings.TrimSpace(*inputPath),
		fingertipScale: *fingertipScale,
	}
	if opts.serveAddr == "" && opts.inputPath == "" {
		return options{}, fmt.Errorf(messages.MessageInputRequired)
	}
	if opts.inputPath != "" && !strings.EqualFold(filepath.Ext(opts.inputPath), ".json") {
		return options{}, fmt.Errorf(messages.MessageInputExtInvalid, opts.inputPath)
	}
	return opts, nil
}

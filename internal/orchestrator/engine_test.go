//go:build !windows

package orchestrator

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/louisbranch/fizzbee-mbt/internal/codec"
	platformgrpc "github.com/louisbranch/fizzbee-mbt/internal/platform/grpc"
	"github.com/louisbranch/fizzbee-mbt/internal/wire"
	"github.com/louisbranch/fizzbee-mbt/mbt"
)

// The test binary doubles as a fake exploration engine. When fakeEngineEnv is
// set, TestMain runs the named mode instead of the tests.
const (
	fakeEngineEnv   = "MBT_FAKE_ENGINE"
	fakePidFileEnv  = "MBT_FAKE_PIDFILE"
	fakeArgsFileEnv = "MBT_FAKE_ARGSFILE"
)

func runFakeEngine(mode string, args []string) int {
	switch mode {
	case "exit0":
		return 0
	case "exit3":
		return 3
	case "args":
		if err := os.WriteFile(os.Getenv(fakeArgsFileEnv), []byte(strings.Join(args, "\n")), 0o600); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	case "sleep":
		if err := os.WriteFile(os.Getenv(fakePidFileEnv), []byte(fmt.Sprint(os.Getpid())), 0o600); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		time.Sleep(time.Minute)
		return 0
	case "drive":
		if err := drive(args); err != nil {
			fmt.Fprintln(os.Stderr, "drive:", err)
			return 2
		}
		return 0
	}
	fmt.Fprintln(os.Stderr, "unknown fake engine mode", mode)
	return 1
}

// drive plays a short exploration against the plugin server.
func drive(args []string) error {
	var socket string
	for _, arg := range args {
		if v, ok := strings.CutPrefix(arg, "--plugin-addr="); ok {
			socket = v
		}
	}
	if socket == "" {
		return fmt.Errorf("missing --plugin-addr in %v", args)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	conn, err := platformgrpc.DialUnix(ctx, socket, 5*time.Second, nil)
	if err != nil {
		return err
	}
	defer conn.Close()
	client := wire.NewPluginServiceClient(conn)

	initResp, err := client.Init(ctx, &wire.InitRequest{})
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	roles := initResp.GetRoles()
	if len(roles) == 0 {
		return fmt.Errorf("no roles reported")
	}

	incArgs := codec.EncodeArgs([]mbt.Arg{{Name: "by", Value: mbt.Int(1)}})
	sequences := make([]*wire.ActionSequence, len(roles))
	for i, role := range roles {
		sequences[i] = &wire.ActionSequence{Requests: []*wire.ExecuteActionRequest{
			{Role: role, ActionName: "Inc", Args: incArgs},
			{Role: role, ActionName: "Dec"},
			{Role: role, ActionName: "Get"},
		}}
	}
	seqResp, err := client.ExecuteActionSequences(ctx, &wire.ExecuteActionSequencesRequest{ActionSequence: sequences})
	if err != nil {
		return fmt.Errorf("execute sequences: %w", err)
	}
	for i, result := range seqResp.GetResults() {
		responses := result.GetResponses()
		if len(responses) != 3 {
			return fmt.Errorf("sequence %d: expected 3 responses, got %d", i, len(responses))
		}
		if responses[1].GetStatus().GetCode() != wire.StatusCode_STATUS_NOT_IMPLEMENTED {
			return fmt.Errorf("sequence %d: expected Dec to be not implemented, got %v", i, responses[1].GetStatus())
		}
		if got := responses[2].GetReturnValues()[0].GetIntValue(); got != 1 {
			return fmt.Errorf("sequence %d: expected Get to return 1, got %d", i, got)
		}
	}

	cleanupResp, err := client.Cleanup(ctx, &wire.CleanupRequest{})
	if err != nil {
		return fmt.Errorf("cleanup: %w", err)
	}
	if cleanupResp.GetStatus().GetCode() != wire.StatusCode_STATUS_OK {
		return fmt.Errorf("cleanup status %v", cleanupResp.GetStatus())
	}
	return nil
}

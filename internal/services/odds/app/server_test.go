package server

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	oddsv1 "github.com/louisbranch/riskodds/api/odds/v1"
	platformgrpc "github.com/louisbranch/riskodds/internal/platform/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func startServer(t *testing.T, opts Options) *oddsv1.OddsServiceClient {
	t.Helper()
	opts.Addr = "127.0.0.1:0"
	srv, err := New(context.Background(), opts)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(runCtx)
	}()
	t.Cleanup(func() {
		runCancel()
		select {
		case serveErr := <-serveDone:
			if serveErr != nil {
				t.Errorf("serve: %v", serveErr)
			}
		case <-time.After(5 * time.Second):
			t.Error("timeout waiting for server shutdown")
		}
	})

	conn, err := platformgrpc.DialWithHealth(context.Background(), srv.Addr(), oddsv1.ServiceName, 2*time.Second, nil)
	if err != nil {
		t.Fatalf("dial odds server: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return oddsv1.NewOddsServiceClient(conn)
}

func TestServerBattleRoundTrip(t *testing.T) {
	client := startServer(t, Options{DBPath: filepath.Join(t.TempDir(), "data", "odds.db"), MaxUnits: 100})
	ctx := context.Background()

	resp, err := client.Battle(ctx, &oddsv1.BattleRequest{Attackers: 5, Defenders: 5})
	if err != nil {
		t.Fatalf("battle: %v", err)
	}
	if resp.AtkWinPerc != "59.79" || resp.AtkAvgLoss != "3.14" {
		t.Fatalf("battle = %+v", resp)
	}

	again, err := client.Battle(ctx, &oddsv1.BattleRequest{Attackers: 5, Defenders: 5, DefenderBonus: []int{0}})
	if err != nil {
		t.Fatalf("battle: %v", err)
	}
	if !again.Cached || again.Hits != 2 {
		t.Fatalf("expected cached record, got %+v", again)
	}

	records, err := client.ListBattleRecords(ctx, &oddsv1.ListBattleRecordsRequest{Filter: `schedule = "" AND attackers = 5`})
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	if len(records.Records) != 1 || records.Records[0].Hits != 2 {
		t.Fatalf("records = %+v", records.Records)
	}

	_, err = client.Battle(ctx, &oddsv1.BattleRequest{Attackers: 101, Defenders: 1})
	if status.Code(err) != codes.OutOfRange {
		t.Fatalf("expected OutOfRange, got %v", err)
	}
}

func TestServerRollResultsWithoutRecordLog(t *testing.T) {
	client := startServer(t, Options{})
	ctx := context.Background()

	resp, err := client.RollResults(ctx, &oddsv1.RollResultsRequest{AttackDice: 3, DefenseDice: 2})
	if err != nil {
		t.Fatalf("roll results: %v", err)
	}
	if resp.Counts != (oddsv1.Counts{AtkWin: 2890, Tie: 2611, DefWin: 2275}) || resp.Total != 7776 {
		t.Fatalf("roll results = %+v", resp)
	}

	_, err = client.ListBattleRecords(ctx, &oddsv1.ListBattleRecordsRequest{})
	if status.Code(err) != codes.Unavailable {
		t.Fatalf("expected Unavailable, got %v", err)
	}

	presets, err := client.ListPresets(ctx, &oddsv1.ListPresetsRequest{})
	if err != nil {
		t.Fatalf("list presets: %v", err)
	}
	if len(presets.Presets) != 4 {
		t.Fatalf("presets = %+v", presets.Presets)
	}
}

func TestServerRejectsListenError(t *testing.T) {
	if _, err := New(context.Background(), Options{Addr: "256.0.0.1:bad"}); err == nil {
		t.Fatal("expected listen error")
	}
}

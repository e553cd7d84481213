package amongdata

import (
	"sync"
	"testing"
)

// TestConcurrentResolve hammers every resolver from many goroutines. Run with
// -race to check the tables are never written after init.
func TestConcurrentResolve(t *testing.T) {
	const goroutines = 32

	var wg sync.WaitGroup
	errs := make(chan string, goroutines)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if PrettyPayloadType(CreateGame) != "create game" {
					errs <- "payload type label changed"
					return
				}
				if PrettyDisconnectReason(GameNotFound2) != PrettyDisconnectReason(GameNotFound) {
					errs <- "disconnect alias diverged"
					return
				}
				if label, err := PrettyTaskType(SubmitScan); err != nil || label != "Submit Scan" {
					errs <- "task type label changed"
					return
				}
				if label, err := PrettyPlayerColor(DarkGreen); err != nil || label != "dark green" {
					errs <- "player color label changed"
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}

func BenchmarkPrettyPayloadType(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = PrettyPayloadType(GetGameListV2)
	}
}

func BenchmarkPrettyPayloadTypeUnknown(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = PrettyPayloadType(9999)
	}
}

func BenchmarkPrettyDisconnectReason(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = PrettyDisconnectReason(ServerOverloaded)
	}
}

func BenchmarkPrettyTaskType(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = PrettyTaskType(EnterIdCode)
	}
}

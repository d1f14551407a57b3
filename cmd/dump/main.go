package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/openwork-network/openwork-contract/rpc/marketplace"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractHash := flag.String("contract", "", "LE script hash of the deployed marketplace contract")
	outFile := flag.String("out", "", "File to write the JSON dump to (stdout when omitted)")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractHash == "":
		log.Fatal("missing marketplace contract hash")
	}

	h, err := util.Uint160DecodeStringLE(*contractHash)
	if err != nil {
		log.Fatal(fmt.Errorf("decode contract hash: %w", err))
	}

	err = _dump(*neoRPCEndpoint, h, *outFile)
	if err != nil {
		log.Fatal(err)
	}
}

// snapshot is the full readable state of the marketplace contract at the
// moment of the dump.
type snapshot struct {
	Config          *marketplace.Config          `json:"config"`
	PlatformStats   *marketplace.PlatformStats   `json:"platform_stats"`
	SecurityMetrics *marketplace.SecurityMetrics `json:"security_metrics"`
	Jobs            []*marketplace.Job           `json:"jobs"`
	Bounties        []*marketplace.Bounty        `json:"bounties"`
	AuditLogs       []*marketplace.AuditLogEntry `json:"audit_logs"`
}

func _dump(neoBlockchainRPCEndpoint string, contractHash util.Uint160, outFile string) error {
	b, err := newRemoteBlockChain(neoBlockchainRPCEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	reader := marketplace.NewReader(b.invoker, contractHash)

	var s snapshot

	s.Config, err = reader.GetConfig()
	if err != nil {
		return fmt.Errorf("get config: %w", err)
	}

	s.PlatformStats, err = reader.GetPlatformStats()
	if err != nil {
		return fmt.Errorf("get platform stats: %w", err)
	}

	s.SecurityMetrics, err = reader.GetSecurityMetrics()
	if err != nil {
		return fmt.Errorf("get security metrics: %w", err)
	}

	s.Jobs, err = collectPaged(func(startAfter int64) ([]*marketplace.Job, error) {
		return reader.GetAllJobs(startAfter, pageSize)
	}, func(j *marketplace.Job) int64 { return j.ID })
	if err != nil {
		return fmt.Errorf("collect jobs: %w", err)
	}

	s.Bounties, err = collectPaged(func(startAfter int64) ([]*marketplace.Bounty, error) {
		return reader.GetAllBounties(startAfter, pageSize)
	}, func(b *marketplace.Bounty) int64 { return b.ID })
	if err != nil {
		return fmt.Errorf("collect bounties: %w", err)
	}

	s.AuditLogs, err = collectPaged(func(startAfter int64) ([]*marketplace.AuditLogEntry, error) {
		return reader.GetAuditLogs(startAfter, pageSize)
	}, func(e *marketplace.AuditLogEntry) int64 { return e.ID })
	if err != nil {
		return fmt.Errorf("collect audit logs: %w", err)
	}

	enc, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if outFile == "" {
		fmt.Println(string(enc))
		return nil
	}

	err = os.WriteFile(outFile, enc, 0o600)
	if err != nil {
		return fmt.Errorf("write snapshot to '%s': %w", outFile, err)
	}

	log.Printf("marketplace state is successfully dumped to '%s'\n", outFile)

	return nil
}

const pageSize = 50

// collectPaged drains a paginated contract query. The contract pages by
// entity identifier, so the identifier of the last element of a page is the
// cursor of the next one.
func collectPaged[T any](page func(startAfter int64) ([]T, error), id func(T) int64) ([]T, error) {
	var (
		res   []T
		start int64
	)

	for {
		batch, err := page(start)
		if err != nil {
			return nil, err
		}

		res = append(res, batch...)

		if len(batch) < pageSize {
			return res, nil
		}

		start = id(batch[len(batch)-1])
	}
}

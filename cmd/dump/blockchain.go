package main

import (
	"context"
	"fmt"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
)

// wrapper over the Neo RPC client providing the read-only services the dump
// command needs.
type remoteBlockchain struct {
	rpc     *rpcclient.Client
	invoker *invoker.Invoker
}

// newRemoteBlockChain dials Neo RPC server and returns remoteBlockchain based
// on the opened connection. Connection and all requests are done within 15s
// timeout.
func newRemoteBlockChain(blockChainRPCEndpoint string) (*remoteBlockchain, error) {
	c, err := rpcclient.New(context.Background(), blockChainRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	return &remoteBlockchain{
		rpc:     c,
		invoker: invoker.New(c, nil),
	}, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

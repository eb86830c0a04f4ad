// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package cli_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go"
	natsclient "github.com/osapi-io/nats-client/pkg/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/lux-io/ledger/internal/cli"
	"github.com/lux-io/ledger/internal/config"
	"github.com/lux-io/ledger/internal/messaging"
	"github.com/lux-io/ledger/internal/messaging/mocks"
)

type NATSTestSuite struct {
	suite.Suite

	ctrl *gomock.Controller
}

func TestNATSTestSuite(t *testing.T) {
	suite.Run(t, new(NATSTestSuite))
}

func (suite *NATSTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
}

func (suite *NATSTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *NATSTestSuite) TestParseStorageType() {
	tests := []struct {
		name  string
		input string
		want  nats.StorageType
	}{
		{
			name:  "when memory returns memory storage",
			input: "memory",
			want:  nats.MemoryStorage,
		},
		{
			name:  "when file returns file storage",
			input: "file",
			want:  nats.FileStorage,
		},
		{
			name:  "when empty defaults to file storage",
			input: "",
			want:  nats.FileStorage,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			got := cli.ParseStorageType(tc.input)

			assert.Equal(suite.T(), tc.want, got)
		})
	}
}

func (suite *NATSTestSuite) TestCloseNATSClient() {
	tests := []struct {
		name    string
		setupFn func() func()
	}{
		{
			name: "when mock client does not panic",
			setupFn: func() func() {
				mock := mocks.NewMockNATSClient(suite.ctrl)

				return func() {
					cli.CloseNATSClient(mock)
				}
			},
		},
		{
			name: "when real client with nil NC does not panic",
			setupFn: func() func() {
				client := &natsclient.Client{}

				return func() {
					cli.CloseNATSClient(client)
				}
			},
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			assert.NotPanics(suite.T(), tc.setupFn())
		})
	}
}

func (suite *NATSTestSuite) TestBuildNATSAuthOptions() {
	tests := []struct {
		name string
		auth config.NATSAuth
		want natsclient.AuthOptions
	}{
		{
			name: "when user_pass auth",
			auth: config.NATSAuth{
				Type:     "user_pass",
				Username: "admin",
				Password: "secret",
			},
			want: natsclient.AuthOptions{
				AuthType: natsclient.UserPassAuth,
				Username: "admin",
				Password: "secret",
			},
		},
		{
			name: "when nkey auth",
			auth: config.NATSAuth{
				Type:     "nkey",
				NKeyFile: "/etc/ledger/nkey.seed",
			},
			want: natsclient.AuthOptions{
				AuthType: natsclient.NKeyAuth,
				NKeyFile: "/etc/ledger/nkey.seed",
			},
		},
		{
			name: "when unset defaults to no auth",
			auth: config.NATSAuth{},
			want: natsclient.AuthOptions{
				AuthType: natsclient.NoAuth,
			},
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			got := cli.BuildNATSAuthOptions(tc.auth)

			assert.Equal(suite.T(), tc.want, got)
		})
	}
}

func (suite *NATSTestSuite) TestBuildStoreKVConfig() {
	got := cli.BuildStoreKVConfig(config.Store{
		Bucket:   "ledger-entries",
		TTL:      "720h",
		MaxBytes: 1024,
		Storage:  "memory",
		Replicas: 3,
	})

	assert.Equal(suite.T(), "ledger-entries", got.Bucket)
	assert.Equal(suite.T(), 720*time.Hour, got.TTL)
	assert.Equal(suite.T(), int64(1024), got.MaxBytes)
	assert.Equal(suite.T(), nats.MemoryStorage, got.Storage)
	assert.Equal(suite.T(), 3, got.Replicas)
}

func (suite *NATSTestSuite) TestBuildAuditKVConfig() {
	got := cli.BuildAuditKVConfig(config.Audit{
		Bucket:  "ledger-audit",
		TTL:     "not-a-duration",
		Storage: "file",
	})

	assert.Equal(suite.T(), "ledger-audit", got.Bucket)
	assert.Equal(suite.T(), time.Duration(0), got.TTL)
	assert.Equal(suite.T(), nats.FileStorage, got.Storage)
}

func (suite *NATSTestSuite) TestCreateKVBucketWithConfigErrors() {
	tests := []struct {
		name string
		nc   messaging.NATSClient
	}{
		{
			name: "when client is not a nats client",
			nc:   nil,
		},
		{
			name: "when client is disconnected",
			nc:   &natsclient.Client{},
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			nc := tc.nc
			if nc == nil {
				nc = mocks.NewMockNATSClient(suite.ctrl)
			}

			kv, err := cli.CreateKVBucketWithConfig(
				nc,
				cli.BuildStoreKVConfig(config.Store{Bucket: "ledger-entries"}),
			)

			assert.Error(suite.T(), err)
			assert.Nil(suite.T(), kv)
		})
	}
}

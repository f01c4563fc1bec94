// Package session holds the state created by a successful wallet connect.
package session

import (
	"time"

	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/config"
	"github.com/Layr-Labs/eigenx-wallet-bridge/pkg/contractCaller"
	"github.com/ethereum/go-ethereum/common"
)

// Session is the connected account and the contract handle bound to its signer.
// It is immutable once created.
type Session struct {
	account     common.Address
	chainId     config.ChainId
	contract    contractCaller.IContractCaller
	connectedAt time.Time
}

func NewSession(account common.Address, chainId config.ChainId, contract contractCaller.IContractCaller) *Session {
	return &Session{
		account:     account,
		chainId:     chainId,
		contract:    contract,
		connectedAt: time.Now().UTC(),
	}
}

func (s *Session) Account() common.Address {
	return s.account
}

func (s *Session) ChainId() config.ChainId {
	return s.chainId
}

// Contract returns the contract caller that signs as Account.
func (s *Session) Contract() contractCaller.IContractCaller {
	return s.contract
}

func (s *Session) ConnectedAt() time.Time {
	return s.connectedAt
}

package config

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Environment variable names for Wallet Bridge configuration
const (
	EnvBridgeContractAddress    = "BRIDGE_CONTRACT_ADDRESS"
	EnvBridgeChainID            = "BRIDGE_CHAIN_ID"
	EnvBridgeUserRPCURL         = "BRIDGE_USER_RPC_URL"
	EnvBridgeOperatorRPCURL     = "BRIDGE_OPERATOR_RPC_URL"
	EnvBridgeWalletType         = "BRIDGE_WALLET_TYPE"
	EnvBridgeKeystoreDir        = "BRIDGE_KEYSTORE_DIR"
	EnvBridgeAccountAddress     = "BRIDGE_ACCOUNT_ADDRESS"
	EnvBridgeWalletPassphrase   = "BRIDGE_WALLET_PASSPHRASE"
	EnvBridgeWalletSignerURL    = "BRIDGE_WALLET_SIGNER_URL"
	EnvBridgeOperatorSigner     = "BRIDGE_OPERATOR_SIGNER"
	EnvBridgeOperatorPrivateKey = "BRIDGE_OPERATOR_PRIVATE_KEY"
	EnvBridgeOperatorSignerURL  = "BRIDGE_OPERATOR_SIGNER_URL"
	EnvBridgeOperatorAddress    = "BRIDGE_OPERATOR_ADDRESS"
	EnvBridgeAwsKmsKeyID        = "BRIDGE_AWS_KMS_KEY_ID"
	EnvBridgeAwsRegion          = "BRIDGE_AWS_REGION"
	EnvBridgeTransferSource     = "BRIDGE_TRANSFER_SOURCE"
	EnvBridgePort               = "BRIDGE_PORT"
	EnvBridgeRateLimit          = "BRIDGE_RATE_LIMIT"
	EnvBridgeRateBurst          = "BRIDGE_RATE_BURST"
	EnvBridgeActionTimeout      = "BRIDGE_ACTION_TIMEOUT"
	EnvBridgePersistenceType    = "BRIDGE_PERSISTENCE_TYPE"
	EnvBridgeDataDir            = "BRIDGE_DATA_DIR"
	EnvBridgeRedisAddress       = "BRIDGE_REDIS_ADDRESS"
	EnvBridgeRedisPassword      = "BRIDGE_REDIS_PASSWORD"
	EnvBridgeRedisDB            = "BRIDGE_REDIS_DB"
	EnvBridgeRedisKeyPrefix     = "BRIDGE_REDIS_KEY_PREFIX"
	EnvBridgeDebug              = "BRIDGE_DEBUG"
	EnvBridgeServerURL          = "BRIDGE_SERVER_URL"
)

// DefaultContractAddress is the DummyDepositWithdraw deployment on sepolia.
const DefaultContractAddress = "0xc239e0d299420aE737A2d1C6671cEA468B2Ba325"

type ChainId uint

const (
	ChainId_EthereumMainnet ChainId = 1
	ChainId_EthereumSepolia ChainId = 11155111
	ChainId_EthereumAnvil   ChainId = 31337
)

type ChainName string

const (
	ChainName_EthereumMainnet ChainName = "mainnet"
	ChainName_EthereumSepolia ChainName = "sepolia"
	ChainName_EthereumAnvil   ChainName = "devnet"
)

var ChainIdToName = map[ChainId]ChainName{
	ChainId_EthereumMainnet: ChainName_EthereumMainnet,
	ChainId_EthereumSepolia: ChainName_EthereumSepolia,
	ChainId_EthereumAnvil:   ChainName_EthereumAnvil,
}
var ChainNameToId = map[ChainName]ChainId{
	ChainName_EthereumMainnet: ChainId_EthereumMainnet,
	ChainName_EthereumSepolia: ChainId_EthereumSepolia,
	ChainName_EthereumAnvil:   ChainId_EthereumAnvil,
}

// BigInt returns the chain id in the form go-ethereum reports it.
func (c ChainId) BigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(c))
}

// IsEthereum reports whether the chain is an Ethereum L1 network (or a fork of one).
func IsEthereum(chainId ChainId) bool {
	switch chainId {
	case ChainId_EthereumMainnet, ChainId_EthereumSepolia, ChainId_EthereumAnvil:
		return true
	}
	return false
}

// GetSupportedChainIDs returns all supported chain IDs
func GetSupportedChainIDs() []ChainId {
	return []ChainId{
		ChainId_EthereumMainnet,
		ChainId_EthereumSepolia,
		ChainId_EthereumAnvil,
	}
}

// GetSupportedChainIDsString returns supported chain IDs as strings for CLI help
func GetSupportedChainIDsString() string {
	return fmt.Sprintf("%d (mainnet), %d (sepolia), %d (anvil)",
		ChainId_EthereumMainnet, ChainId_EthereumSepolia, ChainId_EthereumAnvil)
}

type WalletType string

const (
	WalletType_Keystore WalletType = "keystore"
	WalletType_Remote   WalletType = "remote"
)

type SignerType string

const (
	SignerType_PrivateKey SignerType = "private-key"
	SignerType_Remote     SignerType = "remote"
	SignerType_AwsKms     SignerType = "aws-kms"
)

// TransferSource selects whose funds transferFrom moves.
type TransferSource string

const (
	// TransferSource_Operator moves funds out of the operator's own address.
	TransferSource_Operator TransferSource = "operator"
	// TransferSource_Session moves funds out of the connected user's address.
	TransferSource_Session TransferSource = "session"
)

type PersistenceType string

const (
	PersistenceType_Memory PersistenceType = "memory"
	PersistenceType_Badger PersistenceType = "badger"
	PersistenceType_Redis  PersistenceType = "redis"
)

type WalletConfig struct {
	Type           WalletType `json:"type" yaml:"type"`
	KeystoreDir    string     `json:"keystoreDir" yaml:"keystoreDir"`
	AccountAddress string     `json:"accountAddress" yaml:"accountAddress"`
	Passphrase     string     `json:"-" yaml:"-"`
	SignerUrl      string     `json:"signerUrl" yaml:"signerUrl"`
}

func (wc *WalletConfig) validate(path *field.Path) field.ErrorList {
	var allErrors field.ErrorList
	if wc.AccountAddress != "" && !common.IsHexAddress(wc.AccountAddress) {
		allErrors = append(allErrors, field.Invalid(path.Child("accountAddress"), wc.AccountAddress, "must be a hex address"))
	}
	switch wc.Type {
	case WalletType_Keystore:
		if wc.KeystoreDir == "" {
			allErrors = append(allErrors, field.Required(path.Child("keystoreDir"), "keystoreDir is required for keystore wallets"))
		}
	case WalletType_Remote:
		if wc.SignerUrl == "" {
			allErrors = append(allErrors, field.Required(path.Child("signerUrl"), "signerUrl is required for remote wallets"))
		}
	default:
		allErrors = append(allErrors, field.NotSupported(path.Child("type"), wc.Type, []string{string(WalletType_Keystore), string(WalletType_Remote)}))
	}
	return allErrors
}

type OperatorSignerConfig struct {
	Type        SignerType `json:"type" yaml:"type"`
	PrivateKey  string     `json:"-" yaml:"-"`
	SignerUrl   string     `json:"signerUrl" yaml:"signerUrl"`
	FromAddress string     `json:"fromAddress" yaml:"fromAddress"`
	AwsKmsKeyId string     `json:"awsKmsKeyId" yaml:"awsKmsKeyId"`
	AwsRegion   string     `json:"awsRegion" yaml:"awsRegion"`
}

func (osc *OperatorSignerConfig) validate(path *field.Path) field.ErrorList {
	var allErrors field.ErrorList
	switch osc.Type {
	case SignerType_PrivateKey:
		if osc.PrivateKey == "" {
			allErrors = append(allErrors, field.Required(path.Child("privateKey"), "privateKey is required for private-key signers"))
		} else if !isHexPrivateKey(osc.PrivateKey) {
			allErrors = append(allErrors, field.Invalid(path.Child("privateKey"), "<redacted>", "must be 32 bytes (64 hex chars)"))
		}
	case SignerType_Remote:
		if osc.SignerUrl == "" {
			allErrors = append(allErrors, field.Required(path.Child("signerUrl"), "signerUrl is required for remote signers"))
		}
		if !common.IsHexAddress(osc.FromAddress) {
			allErrors = append(allErrors, field.Invalid(path.Child("fromAddress"), osc.FromAddress, "must be a hex address"))
		}
	case SignerType_AwsKms:
		if osc.AwsKmsKeyId == "" {
			allErrors = append(allErrors, field.Required(path.Child("awsKmsKeyId"), "awsKmsKeyId is required for aws-kms signers"))
		}
	default:
		allErrors = append(allErrors, field.NotSupported(path.Child("type"), osc.Type,
			[]string{string(SignerType_PrivateKey), string(SignerType_Remote), string(SignerType_AwsKms)}))
	}
	return allErrors
}

func isHexPrivateKey(key string) bool {
	k := strings.TrimPrefix(key, "0x")
	if len(k) != 64 {
		return false
	}
	for _, c := range k {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return true
}

type PersistenceConfig struct {
	Type           PersistenceType `json:"type" yaml:"type"`
	DataDir        string          `json:"dataDir" yaml:"dataDir"`
	RedisAddress   string          `json:"redisAddress" yaml:"redisAddress"`
	RedisPassword  string          `json:"-" yaml:"-"`
	RedisDB        int             `json:"redisDb" yaml:"redisDb"`
	RedisKeyPrefix string          `json:"redisKeyPrefix" yaml:"redisKeyPrefix"`
}

func (pc *PersistenceConfig) validate(path *field.Path) field.ErrorList {
	var allErrors field.ErrorList
	switch pc.Type {
	case PersistenceType_Memory:
	case PersistenceType_Badger:
		if pc.DataDir == "" {
			allErrors = append(allErrors, field.Required(path.Child("dataDir"), "dataDir is required for badger persistence"))
		}
	case PersistenceType_Redis:
		if pc.RedisAddress == "" {
			allErrors = append(allErrors, field.Required(path.Child("redisAddress"), "redisAddress is required for redis persistence"))
		}
		if pc.RedisDB < 0 || pc.RedisDB > 15 {
			allErrors = append(allErrors, field.Invalid(path.Child("redisDb"), pc.RedisDB, "must be between 0-15"))
		}
	default:
		allErrors = append(allErrors, field.NotSupported(path.Child("type"), pc.Type,
			[]string{string(PersistenceType_Memory), string(PersistenceType_Badger), string(PersistenceType_Redis)}))
	}
	return allErrors
}

// BridgeConfig represents the complete configuration for a wallet bridge
type BridgeConfig struct {
	// Contract and network
	ContractAddress string    `json:"contract_address"`
	ChainID         ChainId   `json:"chain_id"`
	ChainName       ChainName `json:"chain_name"`

	// RPC endpoints
	UserRpcUrl     string `json:"user_rpc_url"`     // RPC used by the user's wallet provider
	OperatorRpcUrl string `json:"operator_rpc_url"` // independent RPC connection for the operator

	Wallet         WalletConfig         `json:"wallet"`
	OperatorSigner OperatorSignerConfig `json:"operator_signer"`
	TransferSource TransferSource       `json:"transfer_source"`

	// HTTP UI settings
	Port          int           `json:"port"`
	RateLimit     float64       `json:"rate_limit"` // actions per second, 0 disables limiting
	RateBurst     int           `json:"rate_burst"`
	ActionTimeout time.Duration `json:"action_timeout"` // 0 means actions are not bounded

	Persistence PersistenceConfig `json:"persistence"`

	Debug bool `json:"debug"`
}

// Validate validates the bridge configuration and fills in derived fields
func (c *BridgeConfig) Validate() error {
	var allErrors field.ErrorList

	if !common.IsHexAddress(c.ContractAddress) {
		allErrors = append(allErrors, field.Invalid(field.NewPath("contractAddress"), c.ContractAddress, "must be a hex address"))
	}

	chainName, exists := ChainIdToName[c.ChainID]
	if !exists {
		allErrors = append(allErrors, field.Invalid(field.NewPath("chainId"), c.ChainID,
			fmt.Sprintf("unsupported chain ID. Supported: %s", GetSupportedChainIDsString())))
	} else {
		c.ChainName = chainName
	}

	if c.OperatorRpcUrl == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("operatorRpcUrl"), "operatorRpcUrl is required"))
	}
	if c.Wallet.Type == WalletType_Keystore && c.UserRpcUrl == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("userRpcUrl"), "userRpcUrl is required for keystore wallets"))
	}

	allErrors = append(allErrors, c.Wallet.validate(field.NewPath("wallet"))...)
	allErrors = append(allErrors, c.OperatorSigner.validate(field.NewPath("operatorSigner"))...)

	switch c.TransferSource {
	case "":
		c.TransferSource = TransferSource_Operator
	case TransferSource_Operator, TransferSource_Session:
	default:
		allErrors = append(allErrors, field.NotSupported(field.NewPath("transferSource"), c.TransferSource,
			[]string{string(TransferSource_Operator), string(TransferSource_Session)}))
	}

	if c.Port < 1 || c.Port > 65535 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("port"), c.Port, "must be between 1-65535"))
	}
	if c.RateLimit < 0 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("rateLimit"), c.RateLimit, "must not be negative"))
	}
	if c.RateLimit > 0 && c.RateBurst < 1 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("rateBurst"), c.RateBurst, "must be at least 1 when rate limiting is enabled"))
	}
	if c.ActionTimeout < 0 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("actionTimeout"), c.ActionTimeout.String(), "must not be negative"))
	}

	allErrors = append(allErrors, c.Persistence.validate(field.NewPath("persistence"))...)

	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

// GetContractAddress returns the parsed contract address. Call Validate first.
func (c *BridgeConfig) GetContractAddress() common.Address {
	return common.HexToAddress(c.ContractAddress)
}

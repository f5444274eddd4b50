package workernode

const (
	palletName            = "WorkerNodePallet"
	activeRewardPeriodKey = "ActiveRewardPeriodInfo"
	submissionsKey        = "NumberOfSubmissions"
	inventoryKey          = "WorkerNodeOperatorInventory"

	systemPallet  = "System"
	systemAccount = "Account"

	// DefaultTokenDecimals is the number of decimals of the native token.
	DefaultTokenDecimals int32 = 18

	defaultPageSize   uint32 = 1000
	defaultQueryChunk        = 500
)

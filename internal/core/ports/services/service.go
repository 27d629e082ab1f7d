package services

// ServiceContainer bundles all service facades for injection into handlers.
type ServiceContainer struct {
	Token    TokenSvcFacade
	Wallet   WalletSvcFacade
	Transfer TransferSvcFacade
}

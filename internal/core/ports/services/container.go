package services

// ServiceContainer bundles the service facades for route registration.
type ServiceContainer struct {
	Lease      LeaseSvcFacade
	Product    ProductSvcFacade
	Sale       SaleSvcFacade
	Settlement SettlementSvcFacade
	Payment    PaymentSvcFacade
}

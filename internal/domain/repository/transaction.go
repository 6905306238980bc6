package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one connection or transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	AdminRepo() AdminRepository
	ShopRepo() ShopRepository
	PlanRepo() PlanRepository
	SubscriptionRequestRepo() SubscriptionRequestRepository
	PaymentTransactionRepo() PaymentTransactionRepository
	CategoryRepo() CategoryRepository
	ProductRepo() ProductRepository
	CustomerRepo() CustomerRepository
	OrderRepo() OrderRepository
	InvoiceRepo() InvoiceRepository
	PaymentRepo() PaymentRepository
	PaymentMethodRepo() PaymentMethodRepository
	NotificationRepo() NotificationRepository
}

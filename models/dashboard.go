package models

type DashboardStats struct {
	TotalPoints          int64   `json:"totalPoints"`
	ActiveCustomers      int64   `json:"activeCustomers"`
	CompletedTrips       int64   `json:"completedTrips"`
	TotalRevenue         float64 `json:"totalRevenue"`
	TotalRevenue1Percent float64 `json:"totalRevenue1Percent"`
}

// TransactionPage is one page of the points statement.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	Total        int64         `json:"total"`
	Page         int           `json:"page"`
	TotalPages   int           `json:"totalPages"`
}

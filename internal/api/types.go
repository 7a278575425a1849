package api

import "time"

// Tipos espelhados do backend BarberPro. O front-end nunca deriva nem
// persiste estes registros além da exibição.

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type Paginated[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

type User struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

type Tenant struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	OwnerName        string    `json:"owner_name"`
	OwnerEmail       string    `json:"owner_email"`
	OwnerPhone       string    `json:"owner_phone"`
	Address          string    `json:"address"`
	City             string    `json:"city"`
	Province         string    `json:"province"`
	OpeningHours     string    `json:"opening_hours"`
	ClosingHours     string    `json:"closing_hours"`
	WorkingDays      []int     `json:"working_days"`
	IsActive         bool      `json:"is_active"`
	SubscriptionPlan string    `json:"subscription_plan"`
	Currency         string    `json:"currency"`
	TaxRate          float64   `json:"tax_rate"`
	PhoneNumber      string    `json:"phone_number"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Customer é o cliente da barbearia (o registro de negócio), distinto
// do Client HTTP deste pacote.
type Customer struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email,omitempty"`
	Gender          string    `json:"gender"`
	BirthDate       string    `json:"birth_date,omitempty"`
	Address         string    `json:"address,omitempty"`
	LoyaltyPoints   int       `json:"loyalty_points"`
	TotalSpent      float64   `json:"total_spent"`
	VisitsCount     int       `json:"visits_count"`
	PreferredBarber *int      `json:"preferred_barber,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	LoyaltyLevel    string    `json:"loyalty_level"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Barber struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email,omitempty"`
	Specialization    string    `json:"specialization"`
	ExperienceYears   int       `json:"experience_years"`
	Bio               string    `json:"bio,omitempty"`
	Photo             string    `json:"photo,omitempty"`
	IsActive          bool      `json:"is_active"`
	IsAvailable       bool      `json:"is_available"`
	TotalAppointments int       `json:"total_appointments"`
	Rating            float64   `json:"rating"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type Service struct {
	ID                  int       `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description,omitempty"`
	Category            string    `json:"category"`
	Duration            int       `json:"duration"`
	Price               float64   `json:"price"`
	IsActive            bool      `json:"is_active"`
	RequiresAppointment bool      `json:"requires_appointment"`
	TotalBookings       int       `json:"total_bookings"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type Appointment struct {
	ID                 int        `json:"id"`
	Barbershop         Tenant     `json:"barbershop"`
	Client             Customer   `json:"client"`
	Barber             Barber     `json:"barber"`
	Service            Service    `json:"service"`
	AppointmentTime    time.Time  `json:"appointment_time"`
	Duration           int        `json:"duration"`
	Status             string     `json:"status"`
	PaymentStatus      string     `json:"payment_status"`
	ServicePrice       float64    `json:"service_price"`
	TaxAmount          float64    `json:"tax_amount"`
	TotalAmount        float64    `json:"total_amount"`
	AmountPaid         float64    `json:"amount_paid"`
	Notes              string     `json:"notes,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	ConfirmedAt        *time.Time `json:"confirmed_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
}

type Product struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Category      int       `json:"category"`
	Supplier      *int      `json:"supplier,omitempty"`
	SKU           string    `json:"sku"`
	Barcode       string    `json:"barcode,omitempty"`
	Unit          string    `json:"unit"`
	CostPrice     float64   `json:"cost_price"`
	SellingPrice  float64   `json:"selling_price"`
	CurrentStock  int       `json:"current_stock"`
	MinStockLevel int       `json:"min_stock_level"`
	MaxStockLevel int       `json:"max_stock_level"`
	IsActive      bool      `json:"is_active"`
	IsConsumable  bool      `json:"is_consumable"`
	StockStatus   string    `json:"stock_status"`
	StockValue    float64   `json:"stock_value"`
	ProfitMargin  float64   `json:"profit_margin"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type FinancialReport struct {
	ID                    int       `json:"id"`
	ReportType            string    `json:"report_type"`
	StartDate             string    `json:"start_date"`
	EndDate               string    `json:"end_date"`
	TotalRevenue          float64   `json:"total_revenue"`
	ServiceRevenue        float64   `json:"service_revenue"`
	ProductRevenue        float64   `json:"product_revenue"`
	TotalCost             float64   `json:"total_cost"`
	GrossProfit           float64   `json:"gross_profit"`
	NetProfit             float64   `json:"net_profit"`
	TotalTax              float64   `json:"total_tax"`
	TotalAppointments     int       `json:"total_appointments"`
	CompletedAppointments int       `json:"completed_appointments"`
	CancelledAppointments int       `json:"cancelled_appointments"`
	AverageTicket         float64   `json:"average_ticket"`
	ProfitMargin          float64   `json:"profit_margin"`
	CompletionRate        float64   `json:"completion_rate"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type DashboardMetric struct {
	ID               int     `json:"id"`
	MetricType       string  `json:"metric_type"`
	Name             string  `json:"name"`
	Value            float64 `json:"value"`
	Unit             string  `json:"unit"`
	Period           string  `json:"period"`
	PreviousValue    float64 `json:"previous_value,omitempty"`
	ChangePercentage float64 `json:"change_percentage,omitempty"`
	IsPositive       bool    `json:"is_positive"`
	DisplayOrder     int     `json:"display_order"`
	TrendDirection   string  `json:"trend_direction"`
	CalculatedAt     string  `json:"calculated_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

package gigapi

// Value-shaped DTOs as the platform API serves them. The client keeps no
// authoritative copy; timestamps stay as the wire strings they arrived in.

// Page mirrors the platform's pagination envelope.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// Gig lifecycle statuses.
const (
	GigStatusDraft     = "DRAFT"
	GigStatusOpen      = "OPEN"
	GigStatusBooked    = "BOOKED"
	GigStatusCompleted = "COMPLETED"
	GigStatusCancelled = "CANCELLED"
)

// Application statuses. Transitions out of PENDING are terminal.
const (
	ApplicationStatusPending  = "PENDING"
	ApplicationStatusAccepted = "ACCEPTED"
	ApplicationStatusRejected = "REJECTED"
)

// Message sender classes. SYSTEM messages render distinctly from user ones.
const (
	SenderOrganizer = "ORGANIZER"
	SenderPerformer = "PERFORMER"
	SenderSystem    = "SYSTEM"
)

const (
	MessageTypeText   = "TEXT"
	MessageTypeSystem = "SYSTEM"
)

const (
	ChatStatusActive   = "ACTIVE"
	ChatStatusArchived = "ARCHIVED"
)

type Gig struct {
	ID                  int64    `json:"id"`
	PublicID            string   `json:"publicId"`
	OrganizerID         int64    `json:"organizerId"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Category            string   `json:"category"`
	Genres              []string `json:"genres"`
	Location            string   `json:"location"`
	EventDate           string   `json:"eventDate"`
	ApplicationDeadline string   `json:"applicationDeadline,omitempty"`
	PriceAmount         int64    `json:"priceAmount"`
	Currency            string   `json:"currency"`
	Price               float64  `json:"price"`
	PriceType           string   `json:"priceType"`
	PaymentMethod       string   `json:"paymentMethod"`
	Status              string   `json:"status"`
	ApplicationsCount   int      `json:"applicationsCount"`
	CreatedAt           string   `json:"createdAt"`
}

// GigRequest is the create/update payload. Timestamp fields are expected in
// normalized UTC ISO form; the service layer runs them through timeutil.
type GigRequest struct {
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Category            string   `json:"category"`
	Genres              []string `json:"genres"`
	Location            string   `json:"location"`
	EventDate           string   `json:"eventDate"`
	ApplicationDeadline string   `json:"applicationDeadline,omitempty"`
	PriceAmount         int64    `json:"priceAmount"`
	Currency            string   `json:"currency"`
	PriceType           string   `json:"priceType"`
	PaymentMethod       string   `json:"paymentMethod"`
}

type Application struct {
	ID             int64    `json:"id"`
	GigID          int64    `json:"gigId"`
	GigTitle       string   `json:"gigTitle"`
	PerformerID    int64    `json:"performerId"`
	PerformerName  string   `json:"performerName,omitempty"`
	ArtistName     string   `json:"artistName,omitempty"`
	AvatarURL      string   `json:"avatarUrl,omitempty"`
	Genres         []string `json:"genres"`
	Rating         float64  `json:"rating"`
	ReviewCount    int      `json:"reviewCount"`
	Message        string   `json:"message"`
	Status         string   `json:"status"`
	AppliedAt      string   `json:"appliedAt"`
	DecidedAt      string   `json:"decidedAt,omitempty"`
	DecisionReason string   `json:"decisionReason,omitempty"`
}

type Chat struct {
	ID            int64    `json:"id"`
	GigID         int64    `json:"gigId"`
	GigTitle      string   `json:"gigTitle"`
	PerformerID   int64    `json:"performerId"`
	PerformerName string   `json:"performerName"`
	Status        string   `json:"status"`
	UnreadCount   int      `json:"unreadCount"`
	LastMessage   *Message `json:"lastMessage,omitempty"`
}

type Message struct {
	ID          int64  `json:"id"`
	ChatID      int64  `json:"chatId"`
	Content     string `json:"content"`
	SenderType  string `json:"senderType"`
	MessageType string `json:"messageType"`
	SentAt      string `json:"sentAt"`
	Read        bool   `json:"read"`
}

type Company struct {
	Name       string `json:"name"`
	Address    string `json:"address,omitempty"`
	VATID      string `json:"vatId,omitempty"`
	VATCountry string `json:"vatCountry,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

type Profile struct {
	ID       int64    `json:"id"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Bio      string   `json:"bio,omitempty"`
	Location string   `json:"location,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Company  *Company `json:"company,omitempty"`
}

type Statistics struct {
	GigsCreated          int     `json:"gigsCreated"`
	GigsCompleted        int     `json:"gigsCompleted"`
	GigsCancelled        int     `json:"gigsCancelled"`
	ApplicationsReceived int     `json:"applicationsReceived"`
	AverageRating        float64 `json:"averageRating"`
	ReviewCount          int     `json:"reviewCount"`
	TotalSpent           float64 `json:"totalSpent"`
}

type Performer struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name,omitempty"`
	ArtistName  string   `json:"artistName,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	AvatarURL   string   `json:"avatarUrl,omitempty"`
	Location    string   `json:"location,omitempty"`
	Genres      []string `json:"genres"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
}

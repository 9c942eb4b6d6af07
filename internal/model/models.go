package model

type Project struct {
	ID          int64  `json:"id"`
	Lead        string `json:"lead"`
	LeadID      int64  `json:"lead_id"`
	Title       string `json:"title"`
	Ref         string `json:"ref"`
	Client      string `json:"client"`
	CreatedAt   string `json:"date_created"`
	Description string `json:"description"`
	Boreholes   int    `json:"boreholes"`
	Messages    int    `json:"messages"`
}

type Borehole struct {
	ID            int64   `json:"id"`
	Logger        string  `json:"logger"`
	LoggerID      int64   `json:"logger_id"`
	Project       string  `json:"project"`
	ProjectRef    string  `json:"project_ref"`
	ProjectClient string  `json:"project_client"`
	Ref           string  `json:"ref"`
	CreatedAt     string  `json:"date_created"`
	Northing      Decimal `json:"northing"`
	Easting       Decimal `json:"easting"`
	GroundLevel   Decimal `json:"ground_level"`
	Equipment     string  `json:"equipment"`
	Diameter      int     `json:"bh_dia"`
}

// Layer is one geology stratum logged in a borehole.
type Layer struct {
	ID          int64   `json:"id"`
	Borehole    string  `json:"borehole"`
	BoreholeID  int64   `json:"borehole_id"`
	StartDepth  Decimal `json:"start_depth"`
	EndDepth    Decimal `json:"end_depth"`
	SampleID    string  `json:"sample_id"`
	SPT         string  `json:"spt"`
	FieldTest   string  `json:"field_test"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"timestamp"`
}

type Message struct {
	ID        int64  `json:"id"`
	User      string `json:"user"`
	UserID    int64  `json:"user_id"`
	ProjectID int64  `json:"project"`
	Body      string `json:"message"`
	Date      string `json:"date"`
}

type UserSummary struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Projects  int    `json:"projects"`
	Boreholes int    `json:"boreholes"`
}

type Profile struct {
	User    string    `json:"user"`
	Leading []Project `json:"projects_leading"`
	Logging []Project `json:"projects_logging"`
}

// Sketch is the answer of GET /sketch/{id}. Exactly one of Img or Message is set:
// Message means the project has no saved sketch.
type Sketch struct {
	Img     string `json:"img"`
	Message string `json:"message"`
}

func (s Sketch) Empty() bool {
	return s.Img == ""
}

// Ack is the body of a successful mutation.
type Ack struct {
	Message string `json:"message"`
}

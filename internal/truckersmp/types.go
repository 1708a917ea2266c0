package truckersmp

// envelope is the common TruckersMP API response wrapper.
type envelope[T any] struct {
	Error    bool `json:"error"`
	Response T    `json:"response"`
}

type Event struct {
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	Game      string      `json:"game"`
	Server    EventServer `json:"server"`
	Departure EventPlace  `json:"departure"`
	Arrive    EventPlace  `json:"arrive"`
	MeetupAt  string      `json:"meetup_at"`
	StartAt   string      `json:"start_at"`
	Banner    string      `json:"banner"`
	Map       string      `json:"map"`
	DLCs      DLCMap      `json:"dlcs"`
	URL       string      `json:"url"`
	Creator   Creator     `json:"user"`
	VTC       EventVTC    `json:"vtc"`
}

type EventServer struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type EventPlace struct {
	Location string `json:"location"`
	City     string `json:"city"`
}

type Creator struct {
	ID     int    `json:"id"`
	Name   string `json:"username"`
	Avatar string `json:"avatar"`
}

type EventVTC struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DLCMap arrives as {"dlc_id": "DLC Name"}; only the names matter.
type DLCMap map[string]string

func (m DLCMap) Names() []string {
	names := make([]string, 0, len(m))
	for _, name := range m {
		names = append(names, name)
	}
	return names
}

type VTC struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Tag          string `json:"tag"`
	Slogan       string `json:"slogan"`
	Information  string `json:"information"`
	Rules        string `json:"rules"`
	Logo         string `json:"logo"`
	MembersCount int    `json:"members_count"`
	Recruitment  string `json:"recruitment"`
	CreatedAt    string `json:"created"`
	Verified     bool   `json:"verified"`
	Validated    bool   `json:"validated"`
}

package handler

type BriefResponse struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

type BriefInfoResponse struct {
	Date string `json:"date"`
	Size int64  `json:"size"`
}

type BriefListResponse struct {
	Briefs []BriefInfoResponse `json:"briefs"`
	Total  int                 `json:"total"`
}

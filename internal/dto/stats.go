package dto

type StatsResponseDTO struct {
	TotalRaised     string `json:"totalRaised" example:"1250.00"`
	TotalMiles      int    `json:"totalMiles" example:"1200"`
	TotalDonations  int    `json:"totalDonations" example:"25"`
	AthleteCount    int    `json:"athleteCount" example:"12"`
	TeamCount       int    `json:"teamCount" example:"3"`
	AverageDonation string `json:"averageDonation" example:"50.00"`
}

package review

type CreateReviewRequest struct {
	PropertyID    int64  `json:"property_id" binding:"required"`
	BookingID     *int64 `json:"booking_id"`
	Rating        int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment       string `json:"comment"`
	Cleanliness   *int   `json:"cleanliness" binding:"omitempty,gte=1,lte=5"`
	Accuracy      *int   `json:"accuracy" binding:"omitempty,gte=1,lte=5"`
	Communication *int   `json:"communication" binding:"omitempty,gte=1,lte=5"`
	Location      *int   `json:"location" binding:"omitempty,gte=1,lte=5"`
	Value         *int   `json:"value" binding:"omitempty,gte=1,lte=5"`
}

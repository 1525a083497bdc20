package channels

type CreateChannelRequestDTO struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type UpdateChannelRequestDTO struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type ListChannelsResponseDTO struct {
	Channels []*Channel `json:"channels"`
}

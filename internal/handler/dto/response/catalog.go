package response

import (
	"time"

	"cuponx-backend/internal/domain/offer"
	"cuponx-backend/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: offer.Money(0),
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(offer.Money).String(), nil
			},
		},
	},
}

// copyView maps a read view onto its response DTO. Money becomes a two-decimal string.
func copyView(to, from any) error {
	return copier.CopyWithOption(to, from, copyOption)
}

type OfferResponse struct {
	ID                 int64      `json:"id"`
	Title              string     `json:"titulo"`
	Description        string     `json:"descripcion"`
	RegularPrice       string     `json:"precio_regular"`
	OfferPrice         string     `json:"precio_oferta"`
	DiscountPct        int        `json:"descuento_pct"`
	StartDate          time.Time  `json:"fecha_inicio_oferta"`
	EndDate            time.Time  `json:"fecha_fin_oferta"`
	RedemptionDeadline *time.Time `json:"fecha_limite_uso"`
	Capacity           *int       `json:"cantidad_limite"`
	Remaining          *int       `json:"cupones_disponibles"`
	Sold               int64      `json:"vendidos"`
	ImageURL           *string    `json:"imagen_url"`
	MerchantID         int64      `json:"empresa_id"`
	MerchantName       string     `json:"empresa_nombre"`
	CategoryName       *string    `json:"rubro_nombre"`
}

func FromOfferViews(views []*queries.OfferView) ([]OfferResponse, error) {
	res := make([]OfferResponse, 0, len(views))
	if len(views) == 0 {
		return res, nil
	}
	if err := copyView(&res, views); err != nil {
		return nil, err
	}
	return res, nil
}

type CategoryResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nombre"`
	Description *string `json:"descripcion"`
}

func FromCategoryViews(views []*queries.CategoryView) ([]CategoryResponse, error) {
	res := make([]CategoryResponse, 0, len(views))
	if len(views) == 0 {
		return res, nil
	}
	if err := copyView(&res, views); err != nil {
		return nil, err
	}
	return res, nil
}

type MerchantResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"nombre"`
	Code         string  `json:"codigo"`
	ColorHex     *string `json:"color_hex"`
	Description  *string `json:"descripcion"`
	RewardPct    *int    `json:"reward_pct"`
	CategoryName *string `json:"rubro_nombre"`
	Sold         *int64  `json:"vendidos,omitempty"`
}

func FromMerchantViews(views []*queries.MerchantView) ([]MerchantResponse, error) {
	res := make([]MerchantResponse, 0, len(views))
	if len(views) == 0 {
		return res, nil
	}
	if err := copyView(&res, views); err != nil {
		return nil, err
	}
	return res, nil
}

type MerchantDetailResponse struct {
	MerchantResponse
	Address string `json:"direccion"`
	Phone   string `json:"telefono"`
	Email   string `json:"correo"`
}

func FromMerchantDetailView(v *queries.MerchantDetailView) (*MerchantDetailResponse, error) {
	var res MerchantDetailResponse
	if err := copyView(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

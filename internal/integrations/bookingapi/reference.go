package bookingapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-CustomerPortal/internal/domain"
)

// ListAreas возвращает список районов обслуживания
func (c *Client) ListAreas(ctx context.Context, token string) ([]domain.Option, error) {
	var resp optionListWire
	if err := c.do(ctx, http.MethodGet, "/area", token, nil, &resp); err != nil {
		return nil, err
	}

	areas := make([]domain.Option, 0, len(resp.Data))
	for i := range resp.Data {
		areas = append(areas, resp.Data[i].toDomain())
	}
	return areas, nil
}

// ListDistricts возвращает список микрорайонов выбранного района
func (c *Client) ListDistricts(ctx context.Context, token string, areaID int64) ([]domain.Option, error) {
	path := fmt.Sprintf("/district?areaId=%d", areaID)

	var resp optionListWire
	if err := c.do(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}

	districts := make([]domain.Option, 0, len(resp.Data))
	for i := range resp.Data {
		districts = append(districts, resp.Data[i].toDomain())
	}
	return districts, nil
}

// ListProperties возвращает список объектов недвижимости выбранного микрорайона
func (c *Client) ListProperties(ctx context.Context, token string, districtID int64) ([]domain.PropertyOption, error) {
	path := fmt.Sprintf("/property?districtId=%d", districtID)

	var resp struct {
		Data []propertyWire `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}

	properties := make([]domain.PropertyOption, 0, len(resp.Data))
	for i := range resp.Data {
		properties = append(properties, resp.Data[i].toDomain())
	}
	return properties, nil
}

// GetProperty возвращает объект недвижимости с координатами
// Координаты нужны для запроса бандлов
func (c *Client) GetProperty(ctx context.Context, token string, propertyID int64) (*domain.PropertyOption, error) {
	path := fmt.Sprintf("/property/%d", propertyID)

	var resp struct {
		Data propertyWire `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}

	property := resp.Data.toDomain()
	return &property, nil
}

// ListResidenceTypes возвращает список типов резиденций
func (c *Client) ListResidenceTypes(ctx context.Context, token string) ([]domain.ResidenceTypeOption, error) {
	var resp struct {
		Data []residenceTypeWire `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/residence-types", token, nil, &resp); err != nil {
		return nil, err
	}

	residenceTypes := make([]domain.ResidenceTypeOption, 0, len(resp.Data))
	for i := range resp.Data {
		residenceTypes = append(residenceTypes, resp.Data[i].toDomain())
	}
	return residenceTypes, nil
}

// ListServices возвращает каталог услуг
// С parentID - подуслуги выбранной родительской услуги
func (c *Client) ListServices(ctx context.Context, token string, parentID *int64) ([]domain.ServiceOption, error) {
	path := "/services"
	if parentID != nil {
		path = fmt.Sprintf("/services?parentId=%d", *parentID)
	}

	var resp struct {
		Data []serviceWire `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}

	services := make([]domain.ServiceOption, 0, len(resp.Data))
	for i := range resp.Data {
		services = append(services, resp.Data[i].toDomain())
	}
	return services, nil
}

// GetPricing возвращает прайс для пары {услуга, тип резиденции}
// по всем периодичностям
func (c *Client) GetPricing(ctx context.Context, token string, serviceID, residenceTypeID int64) ([]domain.PriceOption, error) {
	body := map[string]int64{
		"serviceId":       serviceID,
		"residenceTypeId": residenceTypeID,
	}

	var resp struct {
		Data []priceWire `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/pricing", token, body, &resp); err != nil {
		return nil, err
	}

	prices := make([]domain.PriceOption, 0, len(resp.Data))
	for i := range resp.Data {
		prices = append(prices, resp.Data[i].toDomain())
	}
	return prices, nil
}

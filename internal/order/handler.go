package order

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/avkdev/storefront-backend/internal/product"
	"github.com/avkdev/storefront-backend/internal/user"
)

// BillingSaver stores a billing snapshot as the user's default address.
type BillingSaver interface {
	SetBillingID(id int, billingID int) error
}

type Handler struct {
	service *Service
	users   BillingSaver
}

func NewHandler(s *Service, users BillingSaver) *Handler {
	return &Handler{service: s, users: users}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/add-to-cart/", h.addToCart)
	app.Get("/cart/", h.getCart)
	app.Post("/checkout/", h.checkout)
	app.Post("/apply-promo/", h.applyPromo)
}

type addToCartRequest struct {
	Quantity int `json:"quantity" form:"quantity"`
}

func (h *Handler) addToCart(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Query("product_id"))
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product_id"})
	}

	payload := &addToCartRequest{Quantity: 1}
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	item, err := h.service.AddToCart(userID, productID, payload.Quantity)
	if err != nil {
		switch err {
		case ErrInvalidQuantity:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "quantity must be positive"})
		case product.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(item)
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	items, err := h.service.Cart(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	total := (Order{Items: items}).TotalPrice()
	return c.JSON(fiber.Map{"items": items, "totalPrice": total})
}

type checkoutRequest struct {
	FirstName      string `json:"firstName" form:"firstName"`
	LastName       string `json:"lastName" form:"lastName"`
	Address        string `json:"address" form:"address"`
	Address2       string `json:"address2" form:"address2"`
	CountryID      *int   `json:"countryId" form:"countryId"`
	State          string `json:"state" form:"state"`
	Zip            string `json:"zip" form:"zip"`
	IsShippingSame bool   `json:"isShippingAddressSame" form:"isShippingAddressSame"`
	PaymentType    string `json:"paymentType" form:"paymentType"`
	SaveAsDefault  bool   `json:"saveAsDefault" form:"saveAsDefault"`
}

func (h *Handler) checkout(c *fiber.Ctx) error {
	payload := new(checkoutRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.FirstName == "" || payload.LastName == "" || payload.Address == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name and address are required"})
	}
	switch payload.PaymentType {
	case PaymentTypeCreditCard, PaymentTypeDebitCard, PaymentTypePaypal:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown payment type"})
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	billing, err := h.service.Checkout(userID, Billing{
		FirstName:      payload.FirstName,
		LastName:       payload.LastName,
		Address:        payload.Address,
		Address2:       payload.Address2,
		CountryID:      payload.CountryID,
		State:          payload.State,
		Zip:            payload.Zip,
		IsShippingSame: payload.IsShippingSame,
		PaymentType:    payload.PaymentType,
		SaveAsDefault:  payload.SaveAsDefault,
	})
	if err != nil {
		switch err {
		case ErrNoOpenOrder:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "no open order to check out"})
		case ErrAlreadyCheckedOut:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "order already checked out"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	if billing.SaveAsDefault {
		if err := h.users.SetBillingID(userID, billing.ID); err != nil {
			fmt.Printf("warning: could not save default billing for user %d: %v\n", userID, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(billing)
}

type applyPromoRequest struct {
	Code string `json:"code" form:"code"`
}

func (h *Handler) applyPromo(c *fiber.Ctx) error {
	payload := new(applyPromoRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "code is required"})
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	o, err := h.service.ApplyPromo(userID, payload.Code)
	if err != nil {
		switch err {
		case ErrUnknownPromo:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "unknown promo code"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(fiber.Map{
		"order":          o,
		"totalPrice":     o.TotalPrice(),
		"couponDiscount": o.CouponDiscount(),
	})
}

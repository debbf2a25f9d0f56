package controller

import (
	"net/http"

	"github.com/bitsbites/backend/models"
)

// MenuController serves the static menu. The catalog lives in code for now;
// there is no menu editing surface.
type MenuController struct{}

func NewMenuController() *MenuController {
	return &MenuController{}
}

// GetProducts handles GET /products.
func (c *MenuController) GetProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, menuData())
}

func menuData() []models.Category {
	return []models.Category{
		{
			Category: "Starters",
			Items: []models.Product{
				{Name: "Veg Manchuria", Price: 90},
				{Name: "Gobi Manchuria", Price: 100},
				{Name: "Crispy Corn", Price: 90},
				{Name: "Baby Corn Manchuria", Price: 110},
				{Name: "Paneer Manchuria", Price: 130},
				{Name: "Chilli Paneer", Price: 130},
				{Name: "Gobi 65", Price: 130},
				{Name: "Chicken Manchuria", Price: 130},
				{Name: "Chilli Chicken", Price: 130},
				{Name: "Kaju Chicken", Price: 150},
				{Name: "Ginger Chicken", Price: 130},
				{Name: "Chicken 65", Price: 130},
				{Name: "Egg 65", Price: 110},
				{Name: "Egg Manchuria", Price: 110},
				{Name: "Egg Chilli", Price: 110},
				{Name: "Mushroom Manchuria", Price: 129},
				{Name: "Chicken Drum Sticks", Price: 180},
				{Name: "Chicken Wings", Price: 200},
				{Name: "Garlic Chicken", Price: 130},
				{Name: "Butter Garlic Chicken", Price: 140},
				{Name: "Schezwan Prawns", Price: 210},
				{Name: "Chilly Prawns", Price: 180},
				{Name: "Crispy Prawns", Price: 200},
				{Name: "Maggi Pakora", Price: 120},
			},
		},
		{
			Category: "Rolls",
			Items: []models.Product{
				{Name: "Veg Roll", Price: 90},
				{Name: "Veg Cheese Roll", Price: 120},
				{Name: "Egg Roll", Price: 100},
				{Name: "Paneer Roll", Price: 120},
				{Name: "Paneer Cheese Roll", Price: 140},
				{Name: "Chicken Roll", Price: 130},
				{Name: "Chicken Cheese Roll", Price: 150},
				{Name: "Egg Chicken Roll", Price: 150},
				{Name: "Mutton Keema Roll", Price: 160},
				{Name: "Double Chicken Cheese Roll", Price: 160},
			},
		},
		{
			Category: "Breads & Puffs",
			Items: []models.Product{
				{Name: "Garlic Bread", Price: 70},
				{Name: "Aloo Samosa (2 pieces)", Price: 30},
				{Name: "Veg Puff", Price: 35},
				{Name: "Egg Puff", Price: 50},
				{Name: "Chicken Puff", Price: 50},
				{Name: "Paneer Puff", Price: 50},
				{Name: "Potato Wedges", Price: 80},
				{Name: "French Fries", Price: 80},
			},
		},
		{
			Category: "Dosa",
			Items: []models.Product{
				{Name: "Rava Dosa", Price: 55},
				{Name: "Onion Rava Dosa", Price: 65},
				{Name: "Plain Dosa", Price: 35},
				{Name: "Masala Dosa", Price: 50},
				{Name: "Onion Dosa", Price: 50},
				{Name: "Onion Rava Masala Dosa", Price: 65},
				{Name: "Pizza Dosa", Price: 130},
				{Name: "Upma Dosa", Price: 80},
				{Name: "Jeera Dosa", Price: 75},
				{Name: "Butter Dosa", Price: 60},
				{Name: "Butter Masala Dosa", Price: 75},
				{Name: "Butter Cheese Dosa", Price: 100},
				{Name: "Butter Corn Dosa", Price: 85},
				{Name: "Butter Karam Dosa", Price: 85},
				{Name: "Double Butter Dosa", Price: 70},
				{Name: "Paneer Dosa", Price: 95},
				{Name: "Paneer Masala Dosa", Price: 110},
				{Name: "Chilli Paneer Dosa", Price: 100},
				{Name: "Paneer Schezwan Dosa", Price: 110},
				{Name: "Paneer Corn Dosa", Price: 110},
				{Name: "Masala Uttapam", Price: 110},
				{Name: "Onion Uttapam", Price: 80},
				{Name: "Kaju Dosa", Price: 135},
				{Name: "Butter Babycorn Dosa", Price: 90},
				{Name: "Spicy Babycorn Dosa", Price: 90},
				{Name: "Paneer Babycorn Dosa", Price: 110},
				{Name: "Cheese Babycorn Dosa", Price: 100},
				{Name: "Cheese Dosa", Price: 100},
				{Name: "Cheese Masala Dosa", Price: 100},
				{Name: "Double Cheese Dosa", Price: 120},
				{Name: "Cheese Schezwan Dosa", Price: 130},
				{Name: "Chilli Cheese Dosa", Price: 90},
				{Name: "Cheese Corn Dosa", Price: 105},
				{Name: "Spl Ghee Masala Dosa", Price: 80},
				{Name: "Ghee Karam Dosa", Price: 75},
				{Name: "Plain Ghee Dosa", Price: 65},
				{Name: "Plain Uttapam", Price: 65},
				{Name: "Butter Uttapam", Price: 85},
				{Name: "Cheese Uttapam", Price: 110},
				{Name: "Kaju Cheese Uttapam", Price: 140},
				{Name: "Panner Uttapam", Price: 110},
				{Name: "Paneer Cheese Uttapam", Price: 130},
			},
		},
		{
			Category: "Idli",
			Items: []models.Product{
				{Name: "Plain Idli (4 pieces)", Price: 40},
				{Name: "Butter Idli", Price: 50},
				{Name: "Plain Ghee Idli", Price: 55},
				{Name: "Karam Podi Idli", Price: 55},
				{Name: "Guntur Ghee Idli", Price: 65},
				{Name: "Sambhar Idli", Price: 60},
				{Name: "Paneer Schezwan Idli", Price: 85},
				{Name: "Cheese Schezwan Idli", Price: 100},
				{Name: "Idli 65", Price: 80},
			},
		},
		{
			Category: "Fried Rice",
			Items: []models.Product{
				{Name: "Veg Fried Rice", Price: 90},
				{Name: "Veg Manchurian Fried Rice", Price: 110},
				{Name: "Gobi Fried Rice", Price: 110},
				{Name: "Egg Fried Rice", Price: 110},
				{Name: "Double Egg Fried Rice", Price: 120},
				{Name: "Double Egg Dble Chicken Fried Rice", Price: 150},
				{Name: "Paneer Fried Rice", Price: 120},
				{Name: "Mixed Non Veg Fried Rice", Price: 180},
				{Name: "Babycorn Fried Rice", Price: 120},
				{Name: "Mushroom Fried Rice", Price: 120},
				{Name: "Chicken Fried Rice", Price: 130},
				{Name: "Double chicken fried rice", Price: 140},
				{Name: "Chicken Schezwan Fried Rice", Price: 140},
			},
		},
		{
			Category: "Noodles",
			Items: []models.Product{
				{Name: "Veg Noodles", Price: 90},
				{Name: "Veg Manchurian Noodles", Price: 100},
				{Name: "Gobi Noodles", Price: 110},
				{Name: "Egg Noodles", Price: 110},
				{Name: "Double Egg Noodles", Price: 120},
				{Name: "Chicken Noodles", Price: 120},
				{Name: "Double Chicken Noodles", Price: 140},
				{Name: "Paneer Noodles", Price: 120},
				{Name: "Mushroom Noodles", Price: 120},
				{Name: "Babycorn Noodles", Price: 110},
				{Name: "Double Egg Dble Chicken Noodles", Price: 150},
				{Name: "Veg Schezwan Noodles", Price: 110},
				{Name: "Chicken Schezwan Noodles", Price: 130},
			},
		},
		{
			Category: "Tea & Coffee",
			Items: []models.Product{
				{Name: "Tea", Price: 20},
				{Name: "Filter Coffee", Price: 25},
				{Name: "Milk", Price: 20},
				{Name: "Black Coffee", Price: 25},
			},
		},
	}
}

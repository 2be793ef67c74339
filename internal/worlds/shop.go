package worlds

// ItemType is the cosmetic slot an item occupies.
type ItemType string

const (
	ItemHat       ItemType = "hat"
	ItemWand      ItemType = "wand"
	ItemOutfit    ItemType = "outfit"
	ItemPet       ItemType = "pet"
	ItemFurniture ItemType = "furniture"
)

// StoreItem is a purchasable cosmetic.
type StoreItem struct {
	ID          string
	Name        string
	Type        ItemType
	Cost        int
	Icon        string
	Description string
}

// StoreItems is the shop inventory. Zero-cost items are the starter set.
var StoreItems = []StoreItem{
	{ID: "hat_novice", Name: "Apprentice Cap", Type: ItemHat, Cost: 0, Icon: "🧢", Description: "A simple cap to start with."},
	{ID: "hat_wizard", Name: "Starry Hat", Type: ItemHat, Cost: 100, Icon: "🎩", Description: "A classic blue wizard hat."},
	{ID: "hat_crown", Name: "Sun Crown", Type: ItemHat, Cost: 300, Icon: "👑", Description: "Shines like the sun."},

	{ID: "wand_wood", Name: "Oak Wand", Type: ItemWand, Cost: 0, Icon: "🥢", Description: "Sturdy wood."},
	{ID: "wand_star", Name: "Star Wand", Type: ItemWand, Cost: 150, Icon: "⭐", Description: "Throws magic sparks."},
	{ID: "wand_crystal", Name: "Crystal Scepter", Type: ItemWand, Cost: 400, Icon: "💎", Description: "Pure concentrated power."},

	{ID: "outfit_novice", Name: "Grey Tunic", Type: ItemOutfit, Cost: 0, Icon: "👕", Description: "Comfortable study clothes."},
	{ID: "outfit_robe", Name: "Master's Robe", Type: ItemOutfit, Cost: 120, Icon: "👘", Description: "Elegant and mysterious."},
	{ID: "outfit_armor", Name: "Light Armor", Type: ItemOutfit, Cost: 250, Icon: "🛡️", Description: "Protection for adventures."},

	{ID: "pet_cat", Name: "Black Cat", Type: ItemPet, Cost: 200, Icon: "🐈‍⬛", Description: "Always lands on its feet."},
	{ID: "pet_owl", Name: "Wise Owl", Type: ItemPet, Cost: 250, Icon: "🦉", Description: "Helps with homework."},
	{ID: "pet_dragon", Name: "Baby Dragon", Type: ItemPet, Cost: 500, Icon: "🐉", Description: "Careful, it breathes fire!"},

	{ID: "furn_books", Name: "Ancient Books", Type: ItemFurniture, Cost: 50, Icon: "📚", Description: "Endless knowledge."},
	{ID: "furn_potions", Name: "Potion Table", Type: ItemFurniture, Cost: 150, Icon: "⚗️", Description: "For magical experiments."},
	{ID: "furn_chest", Name: "Treasure Chest", Type: ItemFurniture, Cost: 100, Icon: "🧳", Description: "Keeps your secrets."},
}

// ItemByID looks up a shop item. Returns nil if unknown.
func ItemByID(id string) *StoreItem {
	for i := range StoreItems {
		if StoreItems[i].ID == id {
			return &StoreItems[i]
		}
	}
	return nil
}

package worlds

// GrimoirePage is a lore/explanation page unlocked by passing a world.
// The Challenge world has no page; it is the end-game aggregation point.
type GrimoirePage struct {
	ID      string
	WorldID ID
	Title   string
	Content string
	Summary string
}

// GrimoirePages is the lore catalog, one page per teaching world.
var GrimoirePages = []GrimoirePage{
	{
		ID:      "page_numbers",
		WorldID: Numbers,
		Title:   "The Secret of Evens",
		Content: "Even numbers come in pairs and end in 0, 2, 4, 6 or 8. Odd numbers always leave one out.",
		Summary: "2, 4, 6... pairs!",
	},
	{
		ID:      "page_addsub",
		WorldID: AddSub,
		Title:   "Joining and Splitting Magic",
		Content: "Adding (+) summons more things. Subtracting (-) makes them vanish. Opposite forces keep the balance.",
		Summary: "apple + apple = two apples",
	},
	{
		ID:      "page_mult",
		WorldID: Mult,
		Title:   "The Multiplication Spell",
		Content: "Multiplying is adding the same number many times, very fast. 3 x 4 means 'three times four'.",
		Summary: "3 x 4 = 12",
	},
	{
		ID:      "page_div",
		WorldID: Div,
		Title:   "The Art of Sharing",
		Content: "Dividing is splitting a treasure so everyone gets the same amount. Fairness is magic!",
		Summary: "gems / pirates = fair shares",
	},
	{
		ID:      "page_geo",
		WorldID: Geo,
		Title:   "Sacred Geometry",
		Content: "Shapes build the world. Squares have 4 equal sides, triangles have 3.",
		Summary: "square, triangle, circle",
	},
	{
		ID:      "page_time",
		WorldID: Time,
		Title:   "Taming the Clock",
		Content: "The short hand tells the hour, the long hand the minutes. Each number is worth 5 minutes.",
		Summary: "tick-tock",
	},
}

// PageForWorld returns the grimoire page tied to a world, or "" if none.
func PageForWorld(id ID) string {
	for _, p := range GrimoirePages {
		if p.WorldID == id {
			return p.ID
		}
	}
	return ""
}

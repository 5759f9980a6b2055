package market

import "time"

// Mock returns the seeded demo catalog. Listing ages are relative to now.
func Mock() *Catalog {
	return MockAt(time.Now())
}

// MockAt returns the seeded demo catalog with listing ages relative to base.
func MockAt(base time.Time) *Catalog {
	ago := func(d time.Duration) time.Time { return base.Add(-d) }
	users := []User{
		{ID: SelfID, Name: "Jordan Lee", Avatar: "https://i.pravatar.cc/150?u=me", Location: "Campus North", Bio: "CS junior. Trading textbooks for sci-fi.", Rating: 4.9, Trades: 23},
		{ID: "alex", Name: "Alex Chen", Avatar: "https://i.pravatar.cc/150?u=alex", Location: "Library Square", Bio: "Economics major, always clearing shelf space.", Rating: 4.8, Trades: 41},
		{ID: "sarah", Name: "Sarah Miller", Avatar: "https://i.pravatar.cc/150?u=sarah", Location: "Engineering Hall", Bio: "Selling last semester's engineering set.", Rating: 4.7, Trades: 12},
		{ID: "mike", Name: "Mike Johnson", Avatar: "https://i.pravatar.cc/150?u=mike", Location: "Downtown", Bio: "Vintage paperbacks and classics.", Rating: 4.5, Trades: 8},
		{ID: "emma", Name: "Emma Davis", Avatar: "https://i.pravatar.cc/150?u=emma", Location: "Arts Quarter", Bio: "Art history and design books.", Rating: 5.0, Trades: 30},
	}
	books := []Book{
		{ID: "1", Title: "Introduction to Algorithms", Author: "Thomas H. Cormen", Price: 45, Condition: "Like New", Category: "Textbooks", SellerID: "alex",
			Description: "Fourth edition. **No highlighting**, spine intact.\n\n- Includes the original dust jacket\n- Pick-up near the library", PostedAt: ago(2 * time.Hour)},
		{ID: "2", Title: "Dune", Author: "Frank Herbert", Price: 12, Condition: "Good", Category: "Fiction", SellerID: "mike",
			Description: "Mass-market paperback with some shelf wear.", PostedAt: ago(26 * time.Hour)},
		{ID: "3", Title: "Calculus: Early Transcendentals", Author: "James Stewart", Price: 60, Condition: "Fair", Category: "Textbooks", SellerID: "sarah",
			Description: "8th edition. Pencil notes in chapters 3-5.", PostedAt: ago(3 * 24 * time.Hour)},
		{ID: "4", Title: "The Design of Everyday Things", Author: "Don Norman", Price: 15, Condition: "Like New", Category: "Design", SellerID: "emma",
			Description: "Revised and expanded edition. Read once.", PostedAt: ago(5 * time.Hour)},
		{ID: "5", Title: "Principles of Economics", Author: "N. Gregory Mankiw", Price: 38.5, Condition: "Good", Category: "Textbooks", SellerID: "alex",
			Description: "Used for ECON 101. Access code *not* included.", PostedAt: ago(7 * 24 * time.Hour)},
		{ID: "6", Title: "Neuromancer", Author: "William Gibson", Price: 9, Condition: "Good", Category: "Fiction", SellerID: SelfID,
			Description: "First Ace printing reissue.", PostedAt: ago(48 * time.Hour)},
		{ID: "7", Title: "Ways of Seeing", Author: "John Berger", Price: 11, Condition: "Fair", Category: "Art", SellerID: "emma",
			Description: "Cover creased, pages clean.", PostedAt: ago(30 * time.Minute)},
	}
	chats := []Conversation{
		{ID: "1", Participants: []string{SelfID, "alex"}, BookID: "1", LastMessage: "Is this still available?", LastMessageTime: "10:30 AM", UnreadCount: 2},
		{ID: "2", Participants: []string{SelfID, "sarah"}, BookID: "3", LastMessage: "I can meet at the engineering building.", LastMessageTime: "Yesterday", UnreadCount: 0},
		{ID: "3", Participants: []string{SelfID, "mike"}, BookID: "2", LastMessage: "Would you take $10 for it?", LastMessageTime: "Mon", UnreadCount: 1},
	}
	messages := map[string][]Message{
		"1": {
			{ID: "1-1", SenderID: SelfID, Text: "Hi! I saw your listing for Introduction to Algorithms.", Time: "10:12 AM"},
			{ID: "1-2", SenderID: "alex", Text: "Hey! Yes, it's in great shape.", Time: "10:20 AM"},
			{ID: "1-3", SenderID: "alex", Text: "Is this still available?", Time: "10:30 AM"},
		},
		"2": {
			{ID: "2-1", SenderID: SelfID, Text: "Where would you like to meet?", Time: "Yesterday"},
			{ID: "2-2", SenderID: "sarah", Text: "I can meet at the engineering building.", Time: "Yesterday"},
		},
		"3": {
			{ID: "3-1", SenderID: "mike", Text: "Would you take $10 for it?", Time: "Mon"},
		},
	}
	return NewCatalog(users, books, chats, messages)
}

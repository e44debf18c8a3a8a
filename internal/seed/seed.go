// Package seed arma los datos iniciales con los que arranca la app.
// Todo vive en memoria: estos fixtures son el "backend" completo del
// prototipo y se reponen al resetear una cuenta.
package seed

import (
	"time"

	"petconnect/internal/domain/engagement"
	"petconnect/internal/domain/feed"
	"petconnect/internal/domain/listings"
	"petconnect/internal/domain/messaging"
	"petconnect/internal/domain/notifications"
	"petconnect/internal/domain/pets"
	"petconnect/internal/domain/places"
	"petconnect/internal/domain/reports"
	"petconnect/internal/domain/stories"
	"petconnect/internal/domain/users"
)

// CurrentUserID es el usuario "dueño" de la sesión de dev.
const CurrentUserID = "u1"

type Fixtures struct {
	Users         []users.User
	Pets          []pets.Pet
	Posts         []feed.Post
	Stories       []stories.Story
	Reports       []reports.Report
	Listings      []listings.Listing
	Places        []places.Place
	Conversations []messaging.Conversation
	Notifications []notifications.Notification
}

func author(id, name, avatar string) engagement.Author {
	return engagement.Author{ID: id, Name: name, Avatar: avatar}
}

// Load construye los fixtures con timestamps relativos a now, para que
// los órdenes "más nuevo primero" salgan como en la UI original.
func Load(now time.Time) Fixtures {
	alex := author("u1", "Alex Johnson", "https://picsum.photos/seed/user1/200/200")
	maria := author("u2", "Maria", "https://picsum.photos/seed/user2/100/100")
	john := author("u3", "John Doe", "https://picsum.photos/seed/user3/100/100")
	paws := author("u4", "Adventure Paws", "https://picsum.photos/seed/user4/100/100")
	kitty := author("u5", "Kitty Corner", "https://picsum.photos/seed/user5/100/100")

	f := Fixtures{}

	f.Users = []users.User{
		{
			ID: alex.ID, Name: alex.Name, Avatar: alex.Avatar,
			Bio:      "Proud parent of Buddy and Max. Always up for a hike.",
			Location: "Petville",
			Email:    "alex@petconnect.app",
			Phone:    "+1 555 0101",

			CreatedAt: now.Add(-90 * 24 * time.Hour),
			UpdatedAt: now.Add(-90 * 24 * time.Hour),
		},
		{ID: maria.ID, Name: maria.Name, Avatar: maria.Avatar, Location: "Petville", CreatedAt: now.Add(-80 * 24 * time.Hour), UpdatedAt: now.Add(-80 * 24 * time.Hour)},
		{ID: john.ID, Name: john.Name, Avatar: john.Avatar, CreatedAt: now.Add(-70 * 24 * time.Hour), UpdatedAt: now.Add(-70 * 24 * time.Hour)},
		{ID: paws.ID, Name: paws.Name, Avatar: paws.Avatar, CreatedAt: now.Add(-60 * 24 * time.Hour), UpdatedAt: now.Add(-60 * 24 * time.Hour)},
		{ID: kitty.ID, Name: kitty.Name, Avatar: kitty.Avatar, CreatedAt: now.Add(-50 * 24 * time.Hour), UpdatedAt: now.Add(-50 * 24 * time.Hour)},
	}

	f.Pets = []pets.Pet{
		{
			ID: "p1", OwnerUserID: alex.ID,
			Name: "Buddy", Breed: "Golden Retriever",
			Avatar:    "https://picsum.photos/seed/buddy/100/100",
			Bio:       "Professional good boy and stick enthusiast. My hobbies include napping, chasing squirrels, and getting belly rubs.",
			CreatedAt: now.Add(-89 * 24 * time.Hour),
			UpdatedAt: now.Add(-89 * 24 * time.Hour),
		},
		{
			ID: "p2", OwnerUserID: maria.ID,
			Name: "Lucy", Breed: "Siamese Cat",
			Avatar:    "https://picsum.photos/seed/lucy/100/100",
			CreatedAt: now.Add(-79 * 24 * time.Hour),
			UpdatedAt: now.Add(-79 * 24 * time.Hour),
		},
		{
			ID: "p3", OwnerUserID: alex.ID,
			Name: "Max", Breed: "German Shepherd",
			Avatar:    "https://picsum.photos/seed/max/100/100",
			CreatedAt: now.Add(-30 * 24 * time.Hour),
			UpdatedAt: now.Add(-30 * 24 * time.Hour),
		},
	}

	f.Posts = []feed.Post{
		{
			ID:     "post1",
			Author: alex,
			Pet:    feed.PetTag{ID: "p1", Name: "Buddy", Breed: "Golden Retriever", Avatar: "https://picsum.photos/seed/buddy/100/100"},
			Image:  "https://picsum.photos/seed/post1/600/600",

			Caption: "Enjoying the sun in the park! ☀️",
			Likes:   125,
			Comments: []engagement.Comment{
				{ID: "cm1", Author: maria, Text: "What a good boy!", CreatedAt: now.Add(-40 * time.Minute)},
				{ID: "cm2", Author: john, Text: "Buddy is living his best life", CreatedAt: now.Add(-20 * time.Minute)},
			},
			CreatedAt: now.Add(-1 * time.Hour),
		},
		{
			ID:     "post2",
			Author: maria,
			Pet:    feed.PetTag{ID: "p2", Name: "Lucy", Breed: "Siamese Cat", Avatar: "https://picsum.photos/seed/lucy/100/100"},
			Image:  "https://picsum.photos/seed/post2/600/600",

			Caption: "Nap time is the best time. 😴",
			Likes:   230,
			Comments: []engagement.Comment{
				{ID: "cm3", Author: kitty, Text: "Siamese queens nap hardest", CreatedAt: now.Add(-2 * time.Hour)},
			},
			CreatedAt: now.Add(-3 * time.Hour),
		},
		{
			ID:     "post3",
			Author: alex,
			Pet:    feed.PetTag{ID: "p3", Name: "Max", Breed: "German Shepherd", Avatar: "https://picsum.photos/seed/max/100/100"},
			Image:  "https://picsum.photos/seed/post3/600/600",

			Caption:   "Ready for an adventure!",
			Likes:     98,
			CreatedAt: now.Add(-6 * time.Hour),
		},
	}

	f.Stories = []stories.Story{
		{ID: "s1", Author: alex, Image: "https://picsum.photos/seed/story1/540/960", CreatedAt: now.Add(-10 * time.Minute)},
		{ID: "s2", Author: maria, Image: "https://picsum.photos/seed/story2/540/960", CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "s3", Author: john, Image: "https://picsum.photos/seed/story3/540/960", CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "s4", Author: paws, Image: "https://picsum.photos/seed/story4/540/960", CreatedAt: now.Add(-5 * time.Hour)},
		{ID: "s5", Author: kitty, Image: "https://picsum.photos/seed/story5/540/960", CreatedAt: now.Add(-8 * time.Hour)},
	}

	johnAuthor := john
	f.Reports = []reports.Report{
		{
			ID: "lf1", PetName: "Charlie", Status: reports.StatusLost,
			Location: "Downtown Park", Date: "Oct 28, 2023",
			Image: "https://picsum.photos/seed/charlie/200/200", Breed: "Beagle",
			Description: "Ran off chasing a squirrel. Very friendly, answers to his name.",
			Author:      &johnAuthor,
			Likes:       4,
			CreatedAt:   now.Add(-24 * time.Hour),
		},
		{
			ID: "lf2", PetName: "Unknown", Status: reports.StatusFound,
			Location: "Near Maple St.", Date: "Oct 27, 2023",
			Image: "https://picsum.photos/seed/found1/200/200", Breed: "Labrador Mix",
			Description: "Found wandering without a collar. Currently safe with us.",
			CreatedAt:   now.Add(-48 * time.Hour),
		},
		{
			ID: "lf3", PetName: "Bella", Status: reports.StatusLost,
			Location: "Oakwood Forest", Date: "Oct 25, 2023",
			Image: "https://picsum.photos/seed/bella/200/200", Breed: "Husky",
			CreatedAt: now.Add(-96 * time.Hour),
		},
		{
			ID: "lf4", PetName: "Milo", Status: reports.StatusAdoption,
			Location: "Petville Shelter", Date: "Oct 20, 2023",
			Image: "https://picsum.photos/seed/milo/200/200", Breed: "Tabby Cat",
			Description: "Two years old, neutered, great with kids. Looking for a forever home.",
			CreatedAt:   now.Add(-8 * 24 * time.Hour),
		},
	}

	f.Listings = []listings.Listing{
		{
			ID: "sv1", Owner: maria,
			Name:        "Dog Walking",
			Description: "Daily walks around Petville, solo or small groups. Rain or shine.",
			Price:       "$25",
			Type:        listings.TypeService,
			Image:       "https://picsum.photos/seed/walking/400/200",
			Address:     "Petville Central",
			CreatedAt:   now.Add(-20 * 24 * time.Hour),
			UpdatedAt:   now.Add(-20 * 24 * time.Hour),
		},
		{
			ID: "sv2", Owner: kitty,
			Name:        "Handmade Pet Sweaters",
			Description: "Cozy knitted sweaters, any size from chihuahua to great dane.",
			Price:       "$40",
			Type:        listings.TypeProduct,
			Image:       "https://picsum.photos/seed/sweater/400/200",
			Address:     "456 Meow St, Petville",
			CreatedAt:   now.Add(-15 * 24 * time.Hour),
			UpdatedAt:   now.Add(-15 * 24 * time.Hour),
		},
	}

	f.Places = []places.Place{
		{ID: "l1", Name: "Paws & Play Park", Category: "Dog Park", Distance: "0.5 miles", Address: "123 Bark Ave, Petville", Image: "https://picsum.photos/seed/park/400/200"},
		{ID: "l2", Name: "The Purrfect Cup", Category: "Cat Cafe", Distance: "1.8 miles", Address: "456 Meow St, Petville", Image: "https://picsum.photos/seed/cafe/400/200"},
		{ID: "l3", Name: "Sunny Paws Patio", Category: "Restaurant", Distance: "2.1 miles", Address: "789 Tailwag Rd, Petville", Image: "https://picsum.photos/seed/patio/400/200"},
		{ID: "l4", Name: "The Groom Room", Category: "Grooming", Distance: "1.2 miles", Address: "101 Fluffy Blvd, Petville", Image: "https://picsum.photos/seed/groom/400/200", BusinessService: true},
		{ID: "l5", Name: "Healthy Paws Vet", Category: "Veterinarian", Distance: "2.5 miles", Address: "202 Fetch Ln, Petville", Image: "https://picsum.photos/seed/vet/400/200", BusinessService: true},
		{ID: "l6", Name: "PetSmart", Category: "Pet Store", Distance: "3.1 miles", Address: "303 Chew Toy Cres, Petville", Image: "https://picsum.photos/seed/store/400/200", BusinessService: true},
	}

	member := func(a engagement.Author) messaging.Member {
		return messaging.Member{ID: a.ID, Name: a.Name, Avatar: a.Avatar}
	}

	f.Conversations = []messaging.Conversation{
		{
			ID: "c1", Name: "Maria & Lucy",
			Avatar:       "https://picsum.photos/seed/user2/100/100",
			LastMessage:  "Haha, sounds like Lucy!",
			LastActivity: now.Add(-10 * time.Minute),
			Unread:       2,
			Members:      []messaging.Member{member(alex), member(maria)},
			Messages: []messaging.Message{
				{ID: "m1", Author: alex, Text: "Buddy stole a whole sandwich today", CreatedAt: now.Add(-25 * time.Minute)},
				{ID: "m2", Author: maria, Text: "Haha, sounds like Lucy!", CreatedAt: now.Add(-10 * time.Minute)},
			},
			CreatedAt: now.Add(-40 * 24 * time.Hour),
		},
		{
			// Grupo al que u1 todavía no pertenece: la invitación n4 apunta acá.
			ID: "c2", Name: "Dog Lovers Group",
			Avatar:       "https://picsum.photos/seed/group1/100/100",
			LastMessage:  "Who is going to the park this weekend?",
			LastActivity: now.Add(-1 * time.Hour),
			IsGroup:      true,
			Members:      []messaging.Member{member(maria), member(john), member(paws)},
			Messages: []messaging.Message{
				{ID: "m3", Author: paws, Text: "Who is going to the park this weekend?", CreatedAt: now.Add(-1 * time.Hour)},
			},
			CreatedAt: now.Add(-30 * 24 * time.Hour),
		},
		{
			ID: "c3", Name: "John Doe",
			Avatar:       "https://picsum.photos/seed/user3/100/100",
			LastMessage:  "Thanks for the tip!",
			LastActivity: now.Add(-3 * time.Hour),
			Members:      []messaging.Member{member(alex), member(john)},
			Messages: []messaging.Message{
				{ID: "m4", Author: alex, Text: "Try the groomer on Fluffy Blvd", CreatedAt: now.Add(-4 * time.Hour)},
				{ID: "m5", Author: john, Text: "Thanks for the tip!", CreatedAt: now.Add(-3 * time.Hour)},
			},
			CreatedAt: now.Add(-20 * 24 * time.Hour),
		},
		{
			ID: "c4", Name: "Pet Grooming Tips",
			Avatar:       "https://picsum.photos/seed/group2/100/100",
			LastMessage:  "Remember to use a soft brush.",
			LastActivity: now.Add(-24 * time.Hour),
			Unread:       5,
			IsGroup:      true,
			Members:      []messaging.Member{member(alex), member(maria), member(kitty)},
			Messages: []messaging.Message{
				{ID: "m6", Author: kitty, Text: "Remember to use a soft brush.", CreatedAt: now.Add(-24 * time.Hour)},
			},
			CreatedAt: now.Add(-60 * 24 * time.Hour),
		},
	}

	mariaRef := maria
	johnRef := john
	f.Notifications = []notifications.Notification{
		{
			ID: "n1", Type: notifications.TypeNewMessage,
			Text:        "Maria sent you a message about Lucy.",
			CreatedAt:   now.Add(-5 * time.Minute),
			RelatedUser: &mariaRef,
		},
		{
			ID: "n2", Type: notifications.TypeLostPetUpdate,
			Text:      "A pet matching Charlie's description was found near Maple St.",
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID: "n3", Type: notifications.TypePostLike,
			Text:        "John Doe liked your post of Buddy.",
			IsRead:      true,
			CreatedAt:   now.Add(-5 * time.Hour),
			RelatedUser: &johnRef,
		},
		{
			ID: "n4", Type: notifications.TypeGroupInvite,
			Text:        "Maria invited you to join Dog Lovers Group.",
			CreatedAt:   now.Add(-30 * time.Minute),
			RelatedUser: &mariaRef,
			GroupID:     "c2",
			GroupName:   "Dog Lovers Group",
		},
	}

	return f
}

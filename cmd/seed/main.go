package main

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/iansaccar7/casasbr-rental/internal/database"
	"github.com/iansaccar7/casasbr-rental/internal/domain"
)

func main() {
	db, err := database.Connect("casasbr.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Property{},
		&domain.Booking{},
		&domain.Review{},
		&domain.Favorite{},
		&domain.Message{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// On Postgres, back the availability check with an exclusion
	// constraint so concurrent inserts can't sneak past it. Best effort:
	// SQLite has no gist and the transactional check still holds there.
	if db.Dialector.Name() == "postgres" {
		db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist")
		if err := db.Exec(`
			ALTER TABLE bookings ADD CONSTRAINT idx_bookings_no_overlap
			EXCLUDE USING gist (
				property_id WITH =,
				tsrange(check_in, check_out) WITH &&
			) WHERE (status IN ('pending', 'confirmed'))
		`).Error; err != nil {
			log.Println("overlap constraint already present or unsupported:", err)
		}
	}

	// Cleanup old data (children first to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM messages")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM properties")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@casasbr.com.br",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Administrador",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@casasbr.com.br / admin123")

	userHash, _ := bcrypt.GenerateFromPassword([]byte("user123"), bcrypt.DefaultCost)
	names := []string{"Ana Souza", "Bruno Lima", "Carla Mendes", "Diego Rocha"}
	emails := []string{"ana@example.com.br", "bruno@example.com.br", "carla@example.com.br", "diego@example.com.br"}
	users := make([]domain.User, 0, len(names))
	for i := range names {
		u := domain.User{
			Email:        emails[i],
			PasswordHash: string(userHash),
			Role:         domain.RoleUser,
			Name:         names[i],
			Phone:        fmt.Sprintf("+55 11 9%04d-%04d", 1000+i, 2000+i),
		}
		db.Create(&u)
		users = append(users, u)
	}

	// ================== PROPERTIES ==================
	log.Println("Creating properties...")

	properties := []domain.Property{
		{
			OwnerID:       users[0].ID,
			Title:         "Casa de praia em Floripa",
			Description:   "Casa espacosa a 200m da praia, com churrasqueira e piscina.",
			PropertyType:  domain.PropertyCasa,
			Address:       "Rua das Gaivotas, 120",
			City:          "Florianopolis",
			State:         "SC",
			ZipCode:       "88058-500",
			PricePerNight: 45000,
			Bedrooms:      4,
			Bathrooms:     3,
			MaxGuests:     8,
			AreaSqm:       180,
			Amenities:     `["wifi","piscina","churrasqueira","estacionamento"]`,
			MainImage:     "/static/properties/floripa-casa.jpg",
			Status:        domain.PropertyAvailable,
			Featured:      true,
		},
		{
			OwnerID:       users[0].ID,
			Title:         "Apartamento no centro de Sao Paulo",
			Description:   "Apartamento moderno perto da Avenida Paulista.",
			PropertyType:  domain.PropertyApartamento,
			Address:       "Rua Augusta, 900",
			City:          "Sao Paulo",
			State:         "SP",
			ZipCode:       "01304-001",
			PricePerNight: 28000,
			Bedrooms:      2,
			Bathrooms:     1,
			MaxGuests:     4,
			AreaSqm:       65,
			Amenities:     `["wifi","ar-condicionado","academia"]`,
			MainImage:     "/static/properties/sp-apto.jpg",
			Status:        domain.PropertyAvailable,
			Featured:      true,
		},
		{
			OwnerID:       users[1].ID,
			Title:         "Kitnet aconchegante em Curitiba",
			Description:   "Kitnet mobiliada proxima a UFPR, ideal para uma pessoa.",
			PropertyType:  domain.PropertyKitnet,
			Address:       "Rua XV de Novembro, 350",
			City:          "Curitiba",
			State:         "PR",
			ZipCode:       "80020-310",
			PricePerNight: 9000,
			Bedrooms:      1,
			Bathrooms:     1,
			MaxGuests:     2,
			AreaSqm:       28,
			Amenities:     `["wifi","cozinha"]`,
			MainImage:     "/static/properties/cwb-kitnet.jpg",
			Status:        domain.PropertyAvailable,
		},
		{
			OwnerID:       users[1].ID,
			Title:         "Sobrado familiar em Belo Horizonte",
			Description:   "Sobrado com quintal grande no bairro Savassi.",
			PropertyType:  domain.PropertySobrado,
			Address:       "Rua Pernambuco, 1200",
			City:          "Belo Horizonte",
			State:         "MG",
			ZipCode:       "30130-151",
			PricePerNight: 32000,
			Bedrooms:      3,
			Bathrooms:     2,
			MaxGuests:     6,
			AreaSqm:       140,
			Amenities:     `["wifi","quintal","estacionamento"]`,
			MainImage:     "/static/properties/bh-sobrado.jpg",
			Status:        domain.PropertyAvailable,
		},
		{
			OwnerID:       users[2].ID,
			Title:         "Chacara com lago em Atibaia",
			Description:   "Chacara para fins de semana, lago para pesca e pomar.",
			PropertyType:  domain.PropertyChacara,
			Address:       "Estrada do Rosario, km 4",
			City:          "Atibaia",
			State:         "SP",
			ZipCode:       "12940-000",
			PricePerNight: 60000,
			Bedrooms:      5,
			Bathrooms:     4,
			MaxGuests:     12,
			AreaSqm:       450,
			Amenities:     `["piscina","lago","churrasqueira","campo de futebol"]`,
			MainImage:     "/static/properties/atibaia-chacara.jpg",
			Status:        domain.PropertyMaintenance,
			Featured:      true,
		},
	}
	for i := range properties {
		db.Create(&properties[i])
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")

	today := time.Now().Truncate(24 * time.Hour)
	bookings := []domain.Booking{
		{
			PropertyID:    properties[0].ID,
			UserID:        users[3].ID,
			CheckIn:       today.AddDate(0, 0, 14),
			CheckOut:      today.AddDate(0, 0, 18),
			Guests:        4,
			TotalPrice:    4 * properties[0].PricePerNight,
			Status:        domain.BookingConfirmed,
			PaymentStatus: domain.PaymentPaid,
			PaymentMethod: "pix",
		},
		{
			PropertyID:    properties[1].ID,
			UserID:        users[2].ID,
			CheckIn:       today.AddDate(0, 0, 7),
			CheckOut:      today.AddDate(0, 0, 9),
			Guests:        2,
			TotalPrice:    2 * properties[1].PricePerNight,
			Status:        domain.BookingPending,
			PaymentStatus: domain.PaymentPending,
		},
		{
			PropertyID:    properties[0].ID,
			UserID:        users[1].ID,
			CheckIn:       today.AddDate(0, 0, -30),
			CheckOut:      today.AddDate(0, 0, -25),
			Guests:        6,
			TotalPrice:    5 * properties[0].PricePerNight,
			Status:        domain.BookingCompleted,
			PaymentStatus: domain.PaymentPaid,
			PaymentMethod: "cartao",
		},
	}
	for i := range bookings {
		db.Create(&bookings[i])
	}

	// ================== REVIEWS ==================
	log.Println("Creating reviews...")

	five := 5
	four := 4
	reviews := []domain.Review{
		{
			PropertyID:  properties[0].ID,
			UserID:      users[1].ID,
			BookingID:   &bookings[2].ID,
			Rating:      5,
			Comment:     "Casa impecavel, a praia e linda. Voltaremos!",
			Cleanliness: &five,
			Location:    &five,
		},
		{
			PropertyID:    properties[0].ID,
			UserID:        users[3].ID,
			Rating:        4,
			Comment:       "Muito boa, so o wifi que oscila um pouco.",
			Communication: &four,
		},
		{
			PropertyID: properties[1].ID,
			UserID:     users[2].ID,
			Rating:     5,
			Comment:    "Localizacao perfeita para quem vai a trabalho.",
		},
	}
	for i := range reviews {
		db.Create(&reviews[i])
	}

	// Keep the listing aggregates consistent with the seeded reviews
	db.Model(&domain.Property{}).Where("id = ?", properties[0].ID).
		Updates(map[string]interface{}{"rating": 450, "review_count": 2})
	db.Model(&domain.Property{}).Where("id = ?", properties[1].ID).
		Updates(map[string]interface{}{"rating": 500, "review_count": 1})

	// ================== FAVORITES ==================
	log.Println("Creating favorites...")

	db.Create(&domain.Favorite{UserID: users[3].ID, PropertyID: properties[0].ID})
	db.Create(&domain.Favorite{UserID: users[3].ID, PropertyID: properties[4].ID})
	db.Create(&domain.Favorite{UserID: users[2].ID, PropertyID: properties[1].ID})

	// ================== MESSAGES ==================
	log.Println("Creating messages...")

	db.Create(&domain.Message{
		SenderID:   users[3].ID,
		ReceiverID: users[0].ID,
		PropertyID: &properties[0].ID,
		Subject:    "Duvida sobre o check-in",
		Body:       "Oi! Podemos chegar por volta das 22h?",
	})
	db.Create(&domain.Message{
		SenderID:   users[0].ID,
		ReceiverID: users[3].ID,
		PropertyID: &properties[0].ID,
		Subject:    "Re: Duvida sobre o check-in",
		Body:       "Claro, sem problema. Deixo as chaves no cofre da entrada.",
		IsRead:     true,
	})

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Admin: admin@casasbr.com.br / admin123")
	log.Println("Users: ana@example.com.br ... diego@example.com.br / user123")
}

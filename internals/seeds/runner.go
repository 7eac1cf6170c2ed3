package seeds

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	levelModel "tunedu_backend/internals/features/curriculum/levels/model"
	subjectModel "tunedu_backend/internals/features/curriculum/subjects/model"
	userModel "tunedu_backend/internals/features/users/auth/model"
	helper "tunedu_backend/internals/helpers"
)

// RunAllSeeds loads the demo accounts and the Tunisian school tree. Every
// step is idempotent so the seeder can run on each boot.
func RunAllSeeds(db *gorm.DB) error {
	if err := seedUsers(db); err != nil {
		return err
	}
	if err := seedCurriculum(db); err != nil {
		return err
	}
	log.Println("[INFO] ✅ seeds applied")
	return nil
}

func seedUsers(db *gorm.DB) error {
	users := []struct {
		email    string
		password string
		first    string
		last     string
		role     string
	}{
		{"admin@example.com", "admin123", "Admin", "TunEdu", userModel.RoleAdmin},
		{"student@example.com", "student123", "Salah", "Ben Ali", userModel.RoleStudent},
	}

	for _, u := range users {
		var count int64
		if err := db.Model(&userModel.UserModel{}).Where("email = ?", u.email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		first, last := u.first, u.last
		user := userModel.UserModel{
			Email:        u.email,
			PasswordHash: string(hash),
			FirstName:    &first,
			LastName:     &last,
			Role:         u.role,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		log.Printf("[INFO] seeded user %s (%s)", u.email, u.role)
	}
	return nil
}

func seedCurriculum(db *gorm.DB) error {
	var count int64
	if err := db.Model(&levelModel.LevelModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	levels := []struct {
		name  string
		order int
		years []string
	}{
		{"Primaire", 1, []string{"1ère année", "2ème année", "3ème année", "4ème année", "5ème année", "6ème année"}},
		{"Collège", 2, []string{"7ème année", "8ème année", "9ème année"}},
		{"Lycée", 3, []string{"1ère année secondaire", "2ème année secondaire", "3ème année secondaire", "Baccalauréat"}},
	}

	for _, l := range levels {
		level := levelModel.LevelModel{
			Name:  l.name,
			Slug:  helper.GenerateSlug(l.name),
			Order: l.order,
		}
		if err := db.Create(&level).Error; err != nil {
			return err
		}
		for i, yearName := range l.years {
			year := levelModel.ClassYearModel{
				LevelID: level.ID,
				Name:    yearName,
				Slug:    helper.GenerateSlug(l.name + " " + yearName),
				Order:   i + 1,
			}
			if err := db.Create(&year).Error; err != nil {
				return err
			}
		}
	}

	// a couple of subjects on the Bac year so the browse tree is not empty
	var bac levelModel.ClassYearModel
	if err := db.First(&bac, "name = ?", "Baccalauréat").Error; err != nil {
		return err
	}
	for _, name := range []string{"Mathématiques", "Physique", "Sciences de la vie et de la terre"} {
		subject := subjectModel.SubjectModel{
			ClassYearID: bac.ID,
			Name:        name,
			Slug:        helper.GenerateSlug("bac " + name),
		}
		if err := db.Create(&subject).Error; err != nil {
			return err
		}
	}

	log.Println("[INFO] seeded curriculum tree")
	return nil
}

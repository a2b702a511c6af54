package repositories

import (
	"strconv"
	"strings"

	"blogbox/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

func titleIndexKey(title string) []byte {
	return []byte(TitleIndexPrefix + strings.ToLower(strings.TrimSpace(title)))
}

// Create creates a new post. Title uniqueness is enforced inside the
// transaction via the title index.
func (r *BadgerPostRepository) Create(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(titleIndexKey(post.Title))
		if err == nil {
			return ErrDuplicateTitle
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		// Get next ID
		id, err := getNextID(txn, PostSeqKey)
		if err != nil {
			return err
		}
		post.ID = id
		post.BeforeCreate()

		// Marshal post
		data, err := marshalEntity(post)
		if err != nil {
			return err
		}

		// Save post and title index
		if err := txn.Set(postKey(post.ID), data); err != nil {
			return err
		}
		return txn.Set(titleIndexKey(post.Title), []byte(strconv.Itoa(post.ID)))
	})
}

// GetByID retrieves a post by ID, without its comments
func (r *BadgerPostRepository) GetByID(id int) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves all posts in creation order
func (r *BadgerPostRepository) List() ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Update overwrites the mutable fields of an existing post. Author and
// date survive from the stored record; a title change moves the title
// index entry, still rejecting collisions with other posts.
func (r *BadgerPostRepository) Update(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(post.ID))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var existing models.Post
		err = item.Value(func(val []byte) error {
			return unmarshalEntity(val, &existing)
		})
		if err != nil {
			return err
		}

		// Author and date are immutable after creation
		post.AuthorID = existing.AuthorID
		post.Author = existing.Author
		post.Date = existing.Date

		oldIndex := titleIndexKey(existing.Title)
		newIndex := titleIndexKey(post.Title)
		if string(oldIndex) != string(newIndex) {
			if _, err := txn.Get(newIndex); err == nil {
				return ErrDuplicateTitle
			} else if err != badger.ErrKeyNotFound {
				return err
			}
			if err := txn.Delete(oldIndex); err != nil {
				return err
			}
			if err := txn.Set(newIndex, []byte(strconv.Itoa(post.ID))); err != nil {
				return err
			}
		}

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set(postKey(post.ID), data)
	})
}

// Delete deletes a post, its title index entry and all of its comments
// in a single transaction (cascade).
func (r *BadgerPostRepository) Delete(id int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var post models.Post
		err = item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
		if err != nil {
			return err
		}

		// Collect comment keys first; the iterator must be closed
		// before the deletes are issued.
		var commentKeys [][]byte
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		prefix := append([]byte{}, postCommentPrefix(id)...)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			commentKeys = append(commentKeys, it.Item().KeyCopy(nil))
		}
		it.Close()

		for _, key := range commentKeys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}

		if err := txn.Delete(titleIndexKey(post.Title)); err != nil {
			return err
		}
		return txn.Delete(postKey(id))
	})
}
